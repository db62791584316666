package models

// Item is the demo resource. It lives in memory only and is never
// persisted; see services.ItemStore.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ItemInput struct {
	Name string `json:"name" binding:"required"`
}
