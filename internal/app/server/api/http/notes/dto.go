package notes

import (
	"notemaster/internal/app/server/notestore"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Notes []notestore.Note `json:"notes"`
}

type noteOutput struct {
	Body notestore.Note
}

type getInput struct {
	ID int `path:"id" example:"1" doc:"Note id"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Title   string   `json:"title,omitempty" doc:"Note title, defaults to Untitled Note"`
	Content string   `json:"content,omitempty" doc:"Note body"`
	Tags    []string `json:"tags,omitempty" doc:"Tags"`
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"Note id"`
	Body updateRequest
}

type updateRequest struct {
	Title    *string   `json:"title,omitempty" doc:"New title"`
	Content  *string   `json:"content,omitempty" doc:"New body"`
	Tags     *[]string `json:"tags,omitempty" doc:"Replacement tag list"`
	Favorite *bool     `json:"is_favorite,omitempty" doc:"Favorite flag"`
	Archived *bool     `json:"is_archived,omitempty" doc:"Archived flag"`
	Deleted  *bool     `json:"is_deleted,omitempty" doc:"Trash flag"`
}

type searchInput struct {
	Query string `path:"query" doc:"Search query"`
}

type byTagInput struct {
	Tag string `path:"tag" doc:"Tag to filter by"`
}
