package stockpile

import (
	"fmt"

	"github.com/evdv/stockpile/date"
	"github.com/shopspring/decimal"
)

// Validation happens before any ledger write: a failing check aborts the
// operation with no partial state left behind.

// ValidatePrice rejects negative prices; zero is allowed (giveaways happen).
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("negative price %s: only prices of 0 or higher are allowed", price)
	}
	return nil
}

// ValidateQuantity rejects a zero quantity.
func ValidateQuantity(quantity int) error {
	if quantity == 0 {
		return fmt.Errorf("quantity cannot be 0")
	}
	return nil
}

// ValidateDate checks that a string is a fully specified date in the
// configured format.
func ValidateDate(format date.Format, s string) error {
	_, err := format.ParseDay(s)
	return err
}

// ValidateExpirationDate checks that the expiration date parses and does not
// precede the transaction date.
func ValidateExpirationDate(format date.Format, transactionDate, expirationDate string) error {
	on, err := format.ParseDay(transactionDate)
	if err != nil {
		return err
	}
	expires, err := format.ParseDay(expirationDate)
	if err != nil {
		return err
	}
	if expires.Before(on) {
		return fmt.Errorf("expiration date %s cannot be earlier than the transaction date %s", expirationDate, transactionDate)
	}
	return nil
}

// validateLot runs the purchase checks on an assembled lot, so that records
// arriving from a file are held to the same rules as a direct purchase.
func validateLot(format date.Format, lot BoughtLot) error {
	if err := ValidatePrice(lot.BuyPrice); err != nil {
		return err
	}
	if err := ValidateQuantity(lot.Quantity); err != nil {
		return err
	}
	return ValidateExpirationDate(format, lot.BuyDate, lot.ExpirationDate)
}
