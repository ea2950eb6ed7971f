package models

import "time"

type Category string

const (
	CategoryGeneral   Category = "general"
	CategoryEvents    Category = "events"
	CategoryTraining  Category = "training"
	CategorySocial    Category = "social"
	CategoryEquipment Category = "equipment"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryEvents, CategoryTraining, CategorySocial, CategoryEquipment:
		return true
	}
	return false
}

type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   Category  `json:"category"`
	AuthorName string    `json:"authorName"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}
