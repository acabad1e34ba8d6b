package models

import "time"

type Comment struct {
	ID        string    `json:"id"`
	NewsID    string    `json:"newsId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
