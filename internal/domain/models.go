package domain

import "time"

type IncomeLevel string

const (
	IncomeBelow20K  IncomeLevel = "below-20k"
	Income20Kto50K  IncomeLevel = "20k-50k"
	Income50Kto100K IncomeLevel = "50k-100k"
	IncomeAbove100K IncomeLevel = "above-100k"
)

type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "employed"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
	EmploymentStudent      EmploymentStatus = "student"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

const (
	WithdrawalPending   = "pending"
	WithdrawalCompleted = "completed"
	WithdrawalRejected  = "rejected"
)

const (
	SupportPending  = "pending"
	SupportResolved = "resolved"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type LoanApplication struct {
	ID                 int              `db:"id"`
	UserID             int              `db:"user_id"`
	FullName           string           `db:"full_name"`
	IDNumber           string           `db:"id_number"`
	WhatsappNumber     string           `db:"whatsapp_number"`
	MpesaNumber        string           `db:"mpesa_number"`
	NextOfKinName      string           `db:"next_of_kin_name"`
	NextOfKinContact   string           `db:"next_of_kin_contact"`
	IncomeLevel        IncomeLevel      `db:"income_level"`
	EmploymentStatus   EmploymentStatus `db:"employment_status"`
	Occupation         string           `db:"occupation"`
	ContactPersonName  string           `db:"contact_person_name"`
	ContactPersonPhone string           `db:"contact_person_phone"`
	LoanReason         string           `db:"loan_reason"`
	LoanLimit          int              `db:"loan_limit"`
	Status             string           `db:"status"`
	CreatedAt          time.Time        `db:"created_at"`
}

type LoanDisbursement struct {
	ID              int       `db:"id"`
	ApplicationID   int       `db:"application_id"`
	LoanAmount      float64   `db:"loan_amount"`
	ProcessingFee   float64   `db:"processing_fee"`
	TransactionCode string    `db:"transaction_code"`
	PaymentVerified bool      `db:"payment_verified"`
	Disbursed       bool      `db:"disbursed"`
	CreatedAt       time.Time `db:"created_at"`
}

type SavingsDeposit struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	Amount          float64   `db:"amount"`
	MpesaMessage    string    `db:"mpesa_message"`
	TransactionCode string    `db:"transaction_code"`
	Verified        bool      `db:"verified"`
	CreatedAt       time.Time `db:"created_at"`
}

type UserSavings struct {
	ID      int     `db:"id"`
	UserID  int     `db:"user_id"`
	Balance float64 `db:"balance"`
}

type Withdrawal struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	Amount      float64   `db:"amount"`
	PhoneNumber string    `db:"phone_number"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type SupportRequest struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	Message    string    `db:"message"`
	AdminReply string    `db:"admin_reply"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}
