package models

type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text" json:"answer"`
	Category   uint   `gorm:"index" json:"category"`
	Difficulty int    `json:"difficulty"`
}
