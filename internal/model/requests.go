package model

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Document  string  `json:"document"`
	Phone     string  `json:"phone"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Password  string  `json:"password"`
	Address   Address `json:"address"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh"`
}

type PlaceRequest struct {
	Address     Address `json:"address"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	LocalType   string  `json:"local_type"`
	Capacity    int     `json:"capacity"`
}

type PlanRequest struct {
	PlaceID  int      `json:"place_id"`
	PlanType PlanType `json:"plan_type"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	WeekDays []int    `json:"week_days"`
}

type RatingRequest struct {
	TargetUserID int    `json:"target_user"`
	PlaceID      int    `json:"place"`
	Score        int    `json:"score"`
	Message      string `json:"message"`
}

// Dates arrive as unix timestamps, matching the mobile client.
type EventOrderRequest struct {
	PlaceID       int     `json:"place_ads"`
	PlanID        int     `json:"plan"`
	DatesSelected []int64 `json:"dates_selected"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
}

type UpdateDatesRequest struct {
	EventOrderID  int     `json:"event_order"`
	PlanID        int     `json:"plan"`
	DatesSelected []int64 `json:"dates_selected"`
}

type OrderDecisionRequest struct {
	EventOrderID int `json:"event_order"`
}

type CancellationRequest struct {
	EventOrderID  int    `json:"event_order"`
	Justification string `json:"justification"`
}

type CardRequest struct {
	Number           string `json:"number"`
	HolderName       string `json:"holder_name"`
	HolderDocument   string `json:"holder_document"`
	ExpMonth         int    `json:"exp_month"`
	ExpYear          int    `json:"exp_year"`
	CVV              string `json:"cvv"`
	Brand            string `json:"brand"`
	Label            string `json:"label"`
	BillingAddressID int    `json:"billing_address"`
}

type CreditOrderRequest struct {
	CreditPackID    int `json:"credit_pack"`
	PaymentMethodID int `json:"payment_method"`
	CardID          int `json:"card"`
	Installments    int `json:"installments"`
}

type WebhookPayload struct {
	ID   string `json:"id"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}
