package models

// User represents a registered user. Balance is the user's cash total in
// cents; it is only ever mutated through atomic deltas applied by the
// expense service, or overwritten by an explicit balance-set.
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Name     string `json:"name"`
	Password string `gorm:"not null" json:"-"`
	Balance  int64  `gorm:"type:bigint;not null;default:0" json:"balance"`

	Expenses     []Expense     `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	SavingsGoals []SavingsGoal `gorm:"foreignKey:UserID" json:"savings_goals,omitempty"`
	Investments  []Investment  `gorm:"foreignKey:UserID" json:"investments,omitempty"`
}
