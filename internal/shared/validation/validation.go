package validation

import (
	"errors"
	"fmt"
	"regexp"
)

var mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateMobile validates a 10 digit mobile number
func ValidateMobile(mobile string) error {
	if !mobileRegex.MatchString(mobile) {
		return errors.New("mobile must be 10 digits")
	}
	return nil
}

// ValidateEmail validates a plausible email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidateStringNotEmpty validates that a string is not empty
func ValidateStringNotEmpty(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateBookingType validates that a booking type is one of the allowed values
func ValidateBookingType(bookingType string) error {
	validTypes := []string{"cab", "driver"}
	for _, validType := range validTypes {
		if bookingType == validType {
			return nil
		}
	}
	return fmt.Errorf("invalid booking type: must be one of %v", validTypes)
}

// ValidateCategory validates that a booking category is one of the allowed values
func ValidateCategory(category string) error {
	validCategories := []string{"local", "airport", "outstation"}
	for _, validCategory := range validCategories {
		if category == validCategory {
			return nil
		}
	}
	return fmt.Errorf("invalid category: must be one of %v", validCategories)
}

// ValidateVehicleType validates that a vehicle type is one of the allowed values
func ValidateVehicleType(vehicleType string) error {
	validTypes := []string{"sedan", "suv", "luxury"}
	for _, validType := range validTypes {
		if vehicleType == validType {
			return nil
		}
	}
	return fmt.Errorf("invalid vehicle type: must be one of %v", validTypes)
}

// ValidatePassengers validates the passenger count for a cab booking
func ValidatePassengers(passengers int) error {
	if passengers < 1 || passengers > 8 {
		return errors.New("passengers must be between 1 and 8")
	}
	return nil
}

// ValidateLuggage validates the luggage count for a cab booking
func ValidateLuggage(luggage int) error {
	if luggage < 0 || luggage > 8 {
		return errors.New("luggage must be between 0 and 8")
	}
	return nil
}

// ValidatePaginationParams validates pagination parameters
func ValidatePaginationParams(page, pageSize int) error {
	if page < 1 {
		return errors.New("page must be >= 1")
	}
	if pageSize < 1 {
		return errors.New("page_size must be >= 1")
	}
	if pageSize > 100 {
		return errors.New("page_size must be <= 100")
	}
	return nil
}
