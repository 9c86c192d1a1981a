package db_models

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type Account struct {
	BaseModel
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:member;index"`

	Profile       *Profile       `gorm:"foreignKey:AccountID"`
	Subscriptions []Subscription `gorm:"foreignKey:AccountID"`
	CheckIns      []CheckIn      `gorm:"foreignKey:AccountID"`
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
