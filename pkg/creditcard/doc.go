// Package creditcard parses payment card numbers into validated values and
// classifies their issuing network.
//
// Parse is a pure function: it strips space and dash separators, checks that
// the remaining characters are digits, that there are MinDigits to MaxDigits of
// them and that they pass the Luhn checksum, then matches the leading digits
// against a fixed table of network prefixes. Numbers that pass validation but
// match no network are returned with KindUnknown rather than rejected.
//
//	card, err := creditcard.Parse("4111 1111 1111 1111")
//	if errors.Is(err, creditcard.ErrInvalidChecksum) {
//		// ask the user to re-type the number
//	}
//	fmt.Println(card.Kind(), card.PAN()) // Visa 4111111111111111
package creditcard
