package types

import "github.com/saswattulo/Note-App-VueJs/internal/models"

// UserResponse is the external view of a User. The password hash never leaves
// the process.
type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"f_name"`
	LastName  string `json:"l_name"`
	Email     string `json:"email"`
}

// NoteResponse carries the owned tag names, in the order the tags were added.
type NoteResponse struct {
	ID      uint     `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	UserID  uint     `json:"user_id"`
}

type TagResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	NoteID uint   `json:"note_id"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func NewNoteResponse(n models.Note) NoteResponse {
	tags := make([]string, 0, len(n.Tags))
	for _, tag := range n.Tags {
		tags = append(tags, tag.Name)
	}

	return NoteResponse{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Tags:    tags,
		UserID:  n.UserID,
	}
}

func NewTagResponse(t models.Tag) TagResponse {
	return TagResponse{
		ID:     t.ID,
		Name:   t.Name,
		NoteID: t.NoteID,
	}
}
