package models

import "time"

// SavingsGoal represents a savings target for a user. CurrentSavings grows
// through the add-savings operation and is deliberately independent of the
// user's balance and expense ledger; contributions do not debit the balance.
type SavingsGoal struct {
	Base
	UserID         string    `gorm:"type:uuid;not null;index" json:"user_id"`
	GoalName       string    `gorm:"not null" json:"goal_name"`
	TargetAmount   int64     `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentSavings int64     `gorm:"type:bigint;not null;default:0" json:"current_savings"`
	Deadline       time.Time `json:"deadline"`
	Description    string    `json:"description"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
