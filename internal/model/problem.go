package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Platform string

const (
	PlatformLeetCode      Platform = "leetcode"
	PlatformCodeforces    Platform = "codeforces"
	PlatformCodeChef      Platform = "codechef"
	PlatformGeeksForGeeks Platform = "geeksforgeeks"
	PlatformHackerRank    Platform = "hackerrank"
	PlatformAtCoder       Platform = "atcoder"
	PlatformOther         Platform = "other"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Outcome string

const (
	OutcomeSolved    Outcome = "solved"
	OutcomeAttempted Outcome = "attempted"
	OutcomeStuck     Outcome = "stuck"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeHints     Outcome = "solved-with-hints"
	OutcomeFailed    Outcome = "failed"
)

// StringList is stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// Problem is a single practice attempt on a coding problem.
// swagger:model Problem
type Problem struct {
	BaseModel
	Title      string     `gorm:"size:255;not null" json:"title"`
	Platform   Platform   `gorm:"type:enum('leetcode','codeforces','codechef','geeksforgeeks','hackerrank','atcoder','other');default:'other'" json:"platform"`
	Difficulty Difficulty `gorm:"type:enum('easy','medium','hard');default:'medium'" json:"difficulty"`
	Topic      string     `gorm:"size:100;index" json:"topic"`
	TimeSpent  int        `gorm:"default:0" json:"timeSpent"` // minutes, 0-1440
	Outcome    Outcome    `gorm:"type:enum('solved','attempted','stuck','skipped','solved-with-hints','failed');default:'attempted'" json:"outcome"`
	Date       time.Time  `gorm:"index" json:"date"`
	Link       string     `gorm:"size:500" json:"link,omitempty"`
	CodeLink   string     `gorm:"size:500" json:"codeLink,omitempty"`
	Tags       StringList `gorm:"type:text" json:"tags"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`
	IsRevision bool       `gorm:"default:false" json:"isRevision"`
	UserID     uint       `gorm:"index;not null" json:"userId"`
}

func (Problem) TableName() string {
	return "problems"
}
