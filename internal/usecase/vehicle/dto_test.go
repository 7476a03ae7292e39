package vehicle

import (
	"testing"

	"fleet-maintenance-manager/pkg/utils"
)

func validRegistration() RegisterVehicleRequest {
	return RegisterVehicleRequest{
		Make:               "Toyota",
		Model:              "Innova",
		RegistrationNumber: "KA01AB1234",
		PurchaseDate:       "2024-01-15",
		PurchasePrice:      850000,
		FuelType:           "Diesel",
		EngineNumber:       "ENG4567890",
		ChassisNumber:      "CHAS1234567890",
		Kilometers:         12000,
		Color:              "White",
		Owner:              "Ravi Kumar",
		Phone:              "9876543210",
		Address:            "12 MG Road, Bengaluru",
	}
}

func TestRegisterVehicleRequestValid(t *testing.T) {
	req := validRegistration()
	if err := utils.ValidateStruct(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestPurchasePriceBoundary(t *testing.T) {
	req := validRegistration()

	req.PurchasePrice = 45000
	if err := utils.ValidateStruct(&req); err != nil {
		t.Fatalf("price 45000 should pass: %v", err)
	}

	req.PurchasePrice = 45000.01
	if err := utils.ValidateStruct(&req); err != nil {
		t.Fatalf("price 45000.01 should pass: %v", err)
	}

	req.PurchasePrice = 44999.99
	err := utils.ValidateStruct(&req)
	if err == nil {
		t.Fatalf("price 44999.99 should fail")
	}
	fields := utils.FieldErrors(err)
	if _, ok := fields["purchase_price"]; !ok {
		t.Fatalf("field error map missing purchase_price: %v", fields)
	}
}

func TestPhoneValidation(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"9876543210", true},
		{"0123456789", true},
		{"987654321", false},    // 9 digits
		{"98765432101", false},  // 11 digits
		{"98765abc10", false},   // letters
		{"+919876543210", false}, // prefix not allowed
	}

	for _, tc := range cases {
		req := validRegistration()
		req.Phone = tc.phone
		err := utils.ValidateStruct(&req)
		if tc.ok && err != nil {
			t.Fatalf("phone %q should pass: %v", tc.phone, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("phone %q should fail", tc.phone)
		}
	}
}

func TestWhitespacePaddedFieldsRejected(t *testing.T) {
	req := validRegistration()
	req.Make = " T "
	err := utils.ValidateStruct(&req)
	if err == nil {
		t.Fatalf("make %q is 1 char after trim and should fail", req.Make)
	}
	if _, ok := utils.FieldErrors(err)["make"]; !ok {
		t.Fatalf("field error map missing make: %v", utils.FieldErrors(err))
	}

	req = validRegistration()
	req.Owner = "  R  "
	if err := utils.ValidateStruct(&req); err == nil {
		t.Fatalf("owner %q is 1 char after trim and should fail", req.Owner)
	}

	req = validRegistration()
	req.Color = "\tW\n"
	if err := utils.ValidateStruct(&req); err == nil {
		t.Fatalf("color %q is 1 char after trim and should fail", req.Color)
	}

	// Padding around an otherwise valid value still passes.
	req = validRegistration()
	req.Make = "  Toyota  "
	if err := utils.ValidateStruct(&req); err != nil {
		t.Fatalf("padded valid make should pass: %v", err)
	}
}

func TestFuelTypeValidation(t *testing.T) {
	for _, ft := range []string{"Petrol", "Diesel", "Electric", "Hybrid", "CNG"} {
		req := validRegistration()
		req.FuelType = ft
		if err := utils.ValidateStruct(&req); err != nil {
			t.Fatalf("fuel type %q should pass: %v", ft, err)
		}
	}

	for _, ft := range []string{"", "diesel", "Gasoline", "LPG"} {
		req := validRegistration()
		req.FuelType = ft
		if err := utils.ValidateStruct(&req); err == nil {
			t.Fatalf("fuel type %q should fail", ft)
		}
	}
}

func TestPurchaseDateValidation(t *testing.T) {
	req := validRegistration()
	req.PurchaseDate = "2999-01-01"
	if err := utils.ValidateStruct(&req); err == nil {
		t.Fatalf("future purchase date should fail")
	}

	req.PurchaseDate = "15-01-2024"
	if err := utils.ValidateStruct(&req); err == nil {
		t.Fatalf("malformed purchase date should fail")
	}
}

func TestFieldErrorsUsesJSONNames(t *testing.T) {
	req := validRegistration()
	req.Make = "T"
	req.Phone = "12"

	err := utils.ValidateStruct(&req)
	if err == nil {
		t.Fatalf("expected validation failure")
	}

	fields := utils.FieldErrors(err)
	if _, ok := fields["make"]; !ok {
		t.Fatalf("expected error keyed by json name 'make': %v", fields)
	}
	if _, ok := fields["phone"]; !ok {
		t.Fatalf("expected error keyed by json name 'phone': %v", fields)
	}
}
