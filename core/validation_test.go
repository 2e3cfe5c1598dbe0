package core

import (
	"errors"
	"testing"
)

func TestValidateEstablishment(t *testing.T) {
	tests := []struct {
		name    string
		record  *Establishment
		wantErr error
	}{
		{
			name:    "valid record",
			record:  &Establishment{RegNo: "1234", Name: "Acme Dairy"},
			wantErr: nil,
		},
		{
			name:    "valid record without adba",
			record:  &Establishment{RegNo: "1", Name: "A", ADBA: ""},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrMissingRegNo,
		},
		{
			name:    "missing regNo",
			record:  &Establishment{Name: "Acme Dairy"},
			wantErr: ErrMissingRegNo,
		},
		{
			name:    "whitespace regNo",
			record:  &Establishment{RegNo: "  ", Name: "Acme Dairy"},
			wantErr: ErrMissingRegNo,
		},
		{
			name:    "empty name",
			record:  &Establishment{RegNo: "1234"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "whitespace name",
			record:  &Establishment{RegNo: "1234", Name: " \t"},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEstablishment(tt.record, 3)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEstablishment() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEstablishment() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrDataIntegrity) {
				t.Errorf("ValidateEstablishment() error = %v, should match ErrDataIntegrity", err)
			}
			var die *DataIntegrityError
			if !errors.As(err, &die) || die.Position != 3 {
				t.Errorf("ValidateEstablishment() error = %v, want DataIntegrityError at position 3", err)
			}
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		err := ValidateCatalog([]Establishment{
			{RegNo: "1", Name: "One"},
			{RegNo: "2", Name: "Two"},
		})
		if err != nil {
			t.Errorf("ValidateCatalog() unexpected error = %v", err)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		if err := ValidateCatalog(nil); err != nil {
			t.Errorf("ValidateCatalog() unexpected error = %v", err)
		}
	})

	t.Run("duplicate regNo", func(t *testing.T) {
		err := ValidateCatalog([]Establishment{
			{RegNo: "1", Name: "One"},
			{RegNo: "2", Name: "Two"},
			{RegNo: " 1 ", Name: "Uno"},
		})
		if !errors.Is(err, ErrDuplicateRegNo) {
			t.Fatalf("ValidateCatalog() error = %v, want %v", err, ErrDuplicateRegNo)
		}
		var die *DataIntegrityError
		if !errors.As(err, &die) {
			t.Fatalf("ValidateCatalog() error is not a DataIntegrityError")
		}
		if die.Position != 2 || die.RegNo != "1" {
			t.Errorf("DataIntegrityError = %+v, want position 2 regNo 1", die)
		}
	})

	t.Run("first violation wins", func(t *testing.T) {
		err := ValidateCatalog([]Establishment{
			{RegNo: "1", Name: ""},
			{RegNo: "", Name: "Two"},
		})
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("ValidateCatalog() error = %v, want %v", err, ErrEmptyName)
		}
	})
}

func TestDataIntegrityError_Message(t *testing.T) {
	err := &DataIntegrityError{Position: 4, RegNo: "99", Err: ErrDuplicateRegNo}
	want := `data integrity violation: entry 4 (regNo "99"): registration number is duplicated`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &DataIntegrityError{Position: 0, Err: ErrMissingRegNo}
	want = "data integrity violation: entry 0: registration number is missing"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
