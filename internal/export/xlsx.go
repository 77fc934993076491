// Package export builds spreadsheet workbooks for entity exports.
//
// Each export is one worksheet per entity: a header row of column names,
// then one row per record with the identifier and all scalar fields.
package export

import (
	"fmt"
	"time"

	"socialhub/internal/models"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type for the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet describes a single worksheet to render.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Workbook renders the sheet into an XLSX workbook and returns its bytes.
func Workbook(s Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", s.Name); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	for col, header := range s.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(s.Name, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range s.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(s.Name, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// UsersSheet lays out users for export.
func UsersSheet(users []models.User) Sheet {
	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{
			u.ID, u.Name, u.Surname, u.Gender, formatDate(u.Birthday), u.Location, u.PhoneNumber,
		})
	}
	return Sheet{
		Name:    "Users",
		Headers: []string{"Id", "Name", "Surname", "Gender", "Birthday", "Location", "PhoneNumber"},
		Rows:    rows,
	}
}

// GroupsSheet lays out groups for export.
func GroupsSheet(groups []models.Group) Sheet {
	rows := make([][]interface{}, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []interface{}{g.ID, g.Name, g.Limit})
	}
	return Sheet{
		Name:    "Groups",
		Headers: []string{"Id", "Name", "Limit"},
		Rows:    rows,
	}
}

// PostsSheet lays out posts for export.
func PostsSheet(posts []models.Post) Sheet {
	rows := make([][]interface{}, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []interface{}{p.ID, p.Content, formatTimestamp(p.CreatedAt), p.UserID})
	}
	return Sheet{
		Name:    "Posts",
		Headers: []string{"Id", "Content", "CreationDate", "UserId"},
		Rows:    rows,
	}
}

// CommentsSheet lays out comments for export.
func CommentsSheet(comments []models.Comment) Sheet {
	rows := make([][]interface{}, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []interface{}{c.ID, c.Content, formatTimestamp(c.CreatedAt), c.UserID, c.PostID})
	}
	return Sheet{
		Name:    "Comments",
		Headers: []string{"Id", "Content", "CreationDate", "UserId", "PostId"},
		Rows:    rows,
	}
}

// LikesSheet lays out likes for export.
func LikesSheet(likes []models.Like) Sheet {
	rows := make([][]interface{}, 0, len(likes))
	for _, l := range likes {
		rows = append(rows, []interface{}{l.ID, l.Liked, formatTimestamp(l.CreatedAt), l.UserID, l.PostID})
	}
	return Sheet{
		Name:    "Likes",
		Headers: []string{"Id", "IsLiked", "CreationDate", "UserId", "PostId"},
		Rows:    rows,
	}
}

// FriendshipsSheet lays out friendships for export.
func FriendshipsSheet(friendships []models.Friendship) Sheet {
	rows := make([][]interface{}, 0, len(friendships))
	for _, f := range friendships {
		rows = append(rows, []interface{}{f.ID, f.User1ID, f.User2ID})
	}
	return Sheet{
		Name:    "Friendships",
		Headers: []string{"Id", "User1Id", "User2Id"},
		Rows:    rows,
	}
}

// EventsSheet lays out events for export.
func EventsSheet(events []models.Event) Sheet {
	rows := make([][]interface{}, 0, len(events))
	for _, e := range events {
		rows = append(rows, []interface{}{e.ID, e.Name, e.Description, formatTimestamp(e.StartTime), e.UserID})
	}
	return Sheet{
		Name:    "Events",
		Headers: []string{"Id", "Name", "Description", "StartTime", "UserId"},
		Rows:    rows,
	}
}

// AdvertisementsSheet lays out advertisements for export.
func AdvertisementsSheet(ads []models.Advertisement) Sheet {
	rows := make([][]interface{}, 0, len(ads))
	for _, a := range ads {
		rows = append(rows, []interface{}{a.ID, a.Title, a.Description, a.ImageURL, a.DestinationURL, a.IsActive})
	}
	return Sheet{
		Name:    "Advertisements",
		Headers: []string{"Id", "Title", "Description", "ImageURL", "DestinationURL", "IsActive"},
		Rows:    rows,
	}
}
