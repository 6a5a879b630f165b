package models

import "time"

// PaymentMethod represents how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodOther        PaymentMethod = "other"
)

// Expense represents a single spend recorded against a user. Amount is in
// cents. Every expense lifecycle event (create, update, delete) is mirrored
// into the owning user's balance by the expense service.
type Expense struct {
	Base
	UserID        string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        int64         `gorm:"type:bigint;not null" json:"amount"`
	Category      string        `gorm:"not null" json:"category"`
	PaymentMethod PaymentMethod `gorm:"not null" json:"payment_method"`
	Date          time.Time     `gorm:"not null;index" json:"date"`
	Description   string        `json:"description"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
