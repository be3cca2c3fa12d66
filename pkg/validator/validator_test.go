package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tramondo/pkg/model"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func moneyPtr(m model.Money) *model.Money { return &m }

func validTour() *model.TourInput {
	return &model.TourInput{
		Title:        "Great Barrier Reef Cruise",
		Slug:         "great-barrier-reef-cruise",
		Description:  "Sail the reef",
		Price:        moneyPtr(model.NewMoney(530, 0)),
		Duration:     3,
		Location:     "Cairns, Queensland",
		ImageURL:     "https://images.example.com/reef.jpg",
		ActivityType: "cruises",
	}
}

func TestValidate_Tour(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		mutate    func(*model.TourInput)
		wantField string
	}{
		{name: "valid", mutate: func(*model.TourInput) {}},
		{name: "missing title", mutate: func(in *model.TourInput) { in.Title = "" }, wantField: "title"},
		{name: "missing price", mutate: func(in *model.TourInput) { in.Price = nil }, wantField: "price"},
		{name: "zero price allowed", mutate: func(in *model.TourInput) { in.Price = moneyPtr(0) }},
		{name: "negative price", mutate: func(in *model.TourInput) { in.Price = moneyPtr(-100) }, wantField: "price"},
		{name: "zero duration", mutate: func(in *model.TourInput) { in.Duration = 0 }, wantField: "duration"},
		{name: "unknown activity type", mutate: func(in *model.TourInput) { in.ActivityType = "skydiving" }, wantField: "activityType"},
		{name: "slug with spaces", mutate: func(in *model.TourInput) { in.Slug = "great barrier" }, wantField: "slug"},
		{name: "slug upper case", mutate: func(in *model.TourInput) { in.Slug = "Great-Barrier" }, wantField: "slug"},
		{name: "group size zero", mutate: func(in *model.TourInput) { in.MaxGroupSize = intPtr(0) }, wantField: "maxGroupSize"},
		{name: "group size set", mutate: func(in *model.TourInput) { in.MaxGroupSize = intPtr(12) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validTour()
			tt.mutate(in)

			err := v.Validate(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.Details(), tt.wantField)
		})
	}
}

func TestValidate_Review(t *testing.T) {
	v := New()

	base := func() *model.ReviewInput {
		return &model.ReviewInput{
			TourID:           strPtr("tour-1"),
			CustomerName:     "Sarah Mitchell",
			CustomerInitials: "SM",
			CustomerLocation: "Sydney, Australia",
			Rating:           5,
			Comment:          "Unforgettable.",
		}
	}

	for _, rating := range []int{1, 3, 5} {
		in := base()
		in.Rating = rating
		assert.NoError(t, v.Validate(in), "rating %d", rating)
	}

	for _, rating := range []int{0, 6, -1} {
		in := base()
		in.Rating = rating
		var verrs ValidationErrors
		require.ErrorAs(t, v.Validate(in), &verrs, "rating %d", rating)
		assert.Contains(t, verrs.Details(), "rating")
	}

	in := base()
	in.TourID = nil
	var verrs ValidationErrors
	require.ErrorAs(t, v.Validate(in), &verrs)
	assert.Equal(t, "is required", verrs.Details()["tourId"])
}

func TestValidate_Booking(t *testing.T) {
	v := New()

	base := func() *model.BookingInput {
		return &model.BookingInput{
			TourID:         "tour-1",
			CustomerName:   "Jo Traveller",
			CustomerEmail:  "jo@example.com",
			NumberOfPeople: 2,
			StartDate:      "2025-06-01T00:00:00.000Z",
			TotalPrice:     moneyPtr(model.NewMoney(1060, 0)),
		}
	}

	assert.NoError(t, v.Validate(base()))

	tests := []struct {
		name      string
		mutate    func(*model.BookingInput)
		wantField string
	}{
		{"no people", func(in *model.BookingInput) { in.NumberOfPeople = 0 }, "numberOfPeople"},
		{"bad email", func(in *model.BookingInput) { in.CustomerEmail = "jo-at-example" }, "customerEmail"},
		{"bad start date", func(in *model.BookingInput) { in.StartDate = "soon" }, "startDate"},
		{"bad end date", func(in *model.BookingInput) { in.EndDate = strPtr("later") }, "endDate"},
		{"missing total", func(in *model.BookingInput) { in.TotalPrice = nil }, "totalPrice"},
		{"unknown status", func(in *model.BookingInput) { in.Status = "refunded" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(in)

			var verrs ValidationErrors
			require.ErrorAs(t, v.Validate(in), &verrs)
			assert.Contains(t, verrs.Details(), tt.wantField)
		})
	}

	in := base()
	in.Status = "confirmed"
	in.EndDate = strPtr("2025-06-05")
	assert.NoError(t, v.Validate(in))
}

func TestValidate_Subscription(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&model.SubscriptionInput{Email: "a@b.com"}))

	var verrs ValidationErrors
	require.ErrorAs(t, v.Validate(&model.SubscriptionInput{Email: "not-an-email"}), &verrs)
	assert.Equal(t, "must be a valid email address", verrs.Details()["email"])
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "", ValidationErrors{}.Error())
	assert.Equal(t, "validation failed: 2 error(s)", ValidationErrors{
		{Field: "title", Message: "is required"},
		{Field: "slug", Message: "is required"},
	}.Error())
	assert.Equal(t, "title: is required", ValidationError{Field: "title", Message: "is required"}.Error())
}

func TestAsAppError(t *testing.T) {
	v := New()

	appErr := AsAppError("Invalid subscription", v.Validate(&model.SubscriptionInput{}))
	assert.Equal(t, 400, appErr.StatusCode())
	assert.Equal(t, "Invalid subscription", appErr.Message)
	assert.Equal(t, "is required", appErr.Details["email"])
}
