package domain

import "time"

// Gender enumerates the supported baby genders for a naming request.
type Gender string

const (
	// GenderMale requests names for a boy.
	GenderMale Gender = "male"
	// GenderFemale requests names for a girl.
	GenderFemale Gender = "female"
)

// PaymentStatus represents the payment lifecycle state of a naming request.
type PaymentStatus string

const (
	// PaymentStatusPending indicates payment has not completed yet.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusFree indicates the request does not require payment.
	PaymentStatusFree PaymentStatus = "free"
	// PaymentStatusPaid indicates payment completed and results are unlocked.
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusFailed indicates payment terminally failed.
	PaymentStatusFailed PaymentStatus = "failed"
)

// GenerationStatus represents the name-generation lifecycle state.
type GenerationStatus string

const (
	// GenerationStatusPending indicates generation has not started.
	GenerationStatusPending GenerationStatus = "pending"
	// GenerationStatusGenerating indicates generation is in flight.
	GenerationStatusGenerating GenerationStatus = "generating"
	// GenerationStatusCompleted indicates a result has been persisted.
	GenerationStatusCompleted GenerationStatus = "completed"
	// GenerationStatusFailed indicates generation terminally failed.
	GenerationStatusFailed GenerationStatus = "failed"
)

// BirthInfo carries the optional birth data attached to a naming request.
// Zero values mean "not provided".
type BirthInfo struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	// HourKnown distinguishes an unknown birth time from midnight.
	HourKnown bool
}

// HanjaChar describes one hanja character of a candidate name together with
// its curated meaning and canonical stroke data.
type HanjaChar struct {
	Character string
	Meaning   string
	Strokes   int
	Element   string
}

// StrokeGrade is one of the five derived stroke-sum grades.
type StrokeGrade struct {
	Value       int
	Description string
}

// StrokeAnalysis holds the five-grade stroke numerology for a candidate.
type StrokeAnalysis struct {
	CheonGyeok StrokeGrade // surname + 1
	InGyeok    StrokeGrade // surname + first
	JiGyeok    StrokeGrade // first + second
	OeGyeok    StrokeGrade // second + 1
	ChongGyeok StrokeGrade // surname + first + second
}

// NameCandidate is a single suggested name, either hanja-backed or native
// Korean. HanjaName carries a sentinel value for native names.
type NameCandidate struct {
	KoreanName           string
	HanjaName            string
	HanjaChars           []HanjaChar
	StrokeAnalysis       StrokeAnalysis
	FiveElements         string
	EnergyInterpretation string
	Score                int
}

// NamingResult is the composed, fixed-shape outcome of one generation run.
type NamingResult struct {
	Names       []NameCandidate
	Philosophy  string
	Avoidance   string
	GeneratedAt time.Time
}

// Naming is the persisted naming request entity.
type Naming struct {
	ID               string
	UserID           string
	LastName         string
	Gender           Gender
	Birth            *BirthInfo
	Keywords         string
	PaymentStatus    PaymentStatus
	GenerationStatus GenerationStatus
	OrderID          string
	StripeSessionID  string
	PaidAt           *time.Time
	Result           *NamingResult
	RawResponseRef   string
	ViewCount        int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RequiresUnlock reports whether the full result is still locked for this
// request given the deployment payment target.
func (n Naming) RequiresUnlock(paymentTarget string) bool {
	if paymentTarget != "toss" && paymentTarget != "stripe" {
		return false
	}
	return n.PaymentStatus != PaymentStatusPaid && n.PaymentStatus != PaymentStatusFree
}
