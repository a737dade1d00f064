package model

import "time"

type OrderStatus string

const (
	OrderOpen     OrderStatus = "open"
	OrderAccepted OrderStatus = "accepted"
	OrderRefused  OrderStatus = "refused"
	OrderCanceled OrderStatus = "canceled"
)

type PlanType string

const (
	PlanDaily   PlanType = "daily"
	PlanPackage PlanType = "package"
)

type CreditOrderStatus string

const (
	CreditOrderPending   CreditOrderStatus = "pending"
	CreditOrderCompleted CreditOrderStatus = "completed"
	CreditOrderCanceled  CreditOrderStatus = "canceled"
)

type PlaceStatus string

const (
	PlaceOpen   PlaceStatus = "open"
	PlaceClosed PlaceStatus = "closed"
)

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

type Address struct {
	ID         int     `json:"id"`
	Street     string  `json:"street"`
	Reference  string  `json:"reference"`
	PostalCode string  `json:"postal_code"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type Place struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	AddressID   int         `json:"address_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	LocalType   string      `json:"local_type"`
	Capacity    int         `json:"capacity"`
	Status      PlaceStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// PlaceFilter narrows place listings. Zero values mean "any"; an empty
// Status defaults to open places only.
type PlaceFilter struct {
	LocalType string
	UserID    int
	Status    PlaceStatus
}

// Plan week days use ISO numbering: Monday=1 .. Sunday=7.
type Plan struct {
	ID        int       `json:"id"`
	PlaceID   int       `json:"place_id"`
	PlanType  PlanType  `json:"plan_type"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	WeekDays  []int     `json:"week_days"`
	CreatedAt time.Time `json:"created_at"`
}

type EventOrder struct {
	ID            int         `json:"id"`
	UserID        int         `json:"user_id"`
	PlaceID       int         `json:"place_id"`
	DatesSelected []time.Time `json:"dates_selected"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	Status        OrderStatus `json:"status"`
	PlanType      PlanType    `json:"plan_type"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Rating targets either a user or a place, never both. The unused target
// stays zero.
type Rating struct {
	ID           int       `json:"id"`
	SenderID     int       `json:"sender"`
	TargetUserID int       `json:"target_user,omitempty"`
	PlaceID      int       `json:"place,omitempty"`
	Score        int       `json:"score"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

type Cancellation struct {
	ID            int       `json:"id"`
	EventOrderID  int       `json:"event_order"`
	Justification string    `json:"justification"`
	CreatedAt     time.Time `json:"created_at"`
}

type History struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	EventOrderID int       `json:"event_order"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

type Credit struct {
	UserID   int       `json:"user_id"`
	Amount   float64   `json:"amount"`
	Modified time.Time `json:"modified"`
}

type CreditPack struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	CreditAmount float64   `json:"credit_amount"`
	Activated    bool      `json:"activated"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaymentMethod struct {
	ID     int    `json:"id"`
	Method string `json:"method"`
}

type Card struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	Brand            string    `json:"brand"`
	LastDigits       string    `json:"last_digits"`
	HolderName       string    `json:"holder_name"`
	BillingAddressID int       `json:"billing_address"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreditOrder struct {
	ID              int               `json:"id"`
	UserID          int               `json:"user_id"`
	CreditPackID    int               `json:"credit_pack"`
	PaymentMethodID int               `json:"payment_method"`
	CardID          int               `json:"card"`
	Status          CreditOrderStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Local mirrors of ids issued by the payment gateway.
type GatewayUser struct {
	ID         int
	Gateway    string
	UserID     int
	CustomerID string
	ReceiverID string
}

type GatewayCard struct {
	ID      int
	Gateway string
	CardID  int
	RefID   string
}

type GatewayCreditOrder struct {
	ID            int
	Gateway       string
	CreditOrderID int
	RefID         string
}

// WebhookRegistration gates inbound gateway callbacks: only payloads carrying
// a locally pre-registered webhook id are accepted.
type WebhookRegistration struct {
	ID          int    `json:"id"`
	WebhookID   string `json:"webhook_id"`
	Description string `json:"description"`
}
