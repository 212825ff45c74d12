package creditcard

// iinDigits is the number of leading digits used for classification.
// Every prefix in the table is expanded to an inclusive range over this width.
const iinDigits = 8

// rule maps an inclusive range of 8-digit IINs to a kind.
type rule struct {
	low, high uint32
	kind      Kind
}

// prefix expands a from-to prefix range of the given width into an 8-digit IIN rule.
func prefix(from, to uint32, kind Kind) rule {
	width := 0
	for n := to; n > 0; n /= 10 {
		width++
	}
	scale := uint32(1)
	for i := width; i < iinDigits; i++ {
		scale *= 10
	}

	return rule{low: from * scale, high: (to+1)*scale - 1, kind: kind}
}

// rules is scanned in order and the first rule whose range contains the IIN and
// whose kind accepts the number length wins. Longer prefixes come first so a broad
// prefix never hides a more specific one.
var rules = []rule{ //nolint: gochecknoglobals
	// 8 digits
	prefix(60400100, 60420099, KindUkrCard),

	// 6 digits
	prefix(506099, 506198, KindVerve),
	prefix(650002, 650027, KindVerve),
	prefix(507865, 507964, KindVerve),
	prefix(622126, 622925, KindDiscover),
	prefix(417500, 417500, KindVisaElectron),
	prefix(357111, 357111, KindLankaPay),
	prefix(676770, 676770, KindMaestroUK),
	prefix(676774, 676774, KindMaestroUK),

	// 4 digits
	prefix(6011, 6011, KindDiscover),
	prefix(3528, 3589, KindJCB),
	prefix(6759, 6759, KindMaestroUK),
	prefix(5018, 5018, KindMaestro),
	prefix(5020, 5020, KindMaestro),
	prefix(5038, 5038, KindMaestro),
	prefix(5893, 5893, KindMaestro),
	prefix(6304, 6304, KindMaestro),
	prefix(6761, 6763, KindMaestro),
	prefix(5019, 5019, KindDankort),
	prefix(2200, 2204, KindMir),
	prefix(2205, 2205, KindBorica),
	prefix(2221, 2720, KindMastercard),
	prefix(9792, 9792, KindTroy),
	prefix(4026, 4026, KindVisaElectron),
	prefix(4508, 4508, KindVisaElectron),
	prefix(4844, 4844, KindVisaElectron),
	prefix(4913, 4913, KindVisaElectron),
	prefix(4917, 4917, KindVisaElectron),
	prefix(1946, 1946, KindGPN),

	// 3 digits
	prefix(644, 649, KindDiscover),
	prefix(508, 508, KindRuPay),
	prefix(636, 636, KindInterPayment),
	prefix(637, 639, KindInstaPayment),

	// 2 digits
	prefix(34, 34, KindAmericanExpress),
	prefix(37, 37, KindAmericanExpress),
	prefix(31, 31, KindChinaTUnion),
	prefix(62, 62, KindUnionPay),
	prefix(30, 30, KindDinersClub),
	prefix(36, 36, KindDinersClub),
	prefix(38, 39, KindDinersClub),
	prefix(65, 65, KindDiscover),
	prefix(60, 60, KindRuPay),
	prefix(65, 65, KindRuPay),
	prefix(81, 82, KindRuPay),
	prefix(51, 55, KindMastercard),
	prefix(50, 50, KindGPN),
	prefix(56, 56, KindGPN),
	prefix(58, 58, KindGPN),
	prefix(60, 63, KindGPN),

	// 1 digit
	prefix(4, 4, KindVisa),
	prefix(1, 1, KindUATP),
}

// classify scans the rule table for an IIN taken from a number of n digits.
func classify(iin uint32, n int) Kind {
	for _, r := range rules {
		if iin >= r.low && iin <= r.high && r.kind.ValidLength(n) {
			return r.kind
		}
	}

	return KindUnknown
}
