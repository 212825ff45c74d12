package creditcard_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"creditcard/pkg/creditcard"
	"creditcard/pkg/luhn"
)

// number builds a Luhn-valid number of n digits that starts with prefix.
func number(t *testing.T, prefix string, n int) string {
	t.Helper()

	body := prefix + strings.Repeat("0", n-1-len(prefix))
	check, err := luhn.CheckDigit([]byte(body))
	require.NoError(t, err)

	return body + string(check)
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pan   uint64
		kind  creditcard.Kind
	}{
		{name: "visa 16", input: "4111111111111111", pan: 4111111111111111, kind: creditcard.KindVisa},
		{name: "visa 16 alt", input: "4012888888881881", pan: 4012888888881881, kind: creditcard.KindVisa},
		{name: "visa 13", input: "4222222222222", pan: 4222222222222, kind: creditcard.KindVisa},
		{name: "mastercard", input: "5555555555554444", pan: 5555555555554444, kind: creditcard.KindMastercard},
		{name: "mastercard alt", input: "5105105105105100", pan: 5105105105105100, kind: creditcard.KindMastercard},
		{name: "amex", input: "378282246310005", pan: 378282246310005, kind: creditcard.KindAmericanExpress},
		{name: "amex alt", input: "371449635398431", pan: 371449635398431, kind: creditcard.KindAmericanExpress},
		{name: "discover", input: "6011111111111117", pan: 6011111111111117, kind: creditcard.KindDiscover},
		{name: "discover alt", input: "6011000990139424", pan: 6011000990139424, kind: creditcard.KindDiscover},
		{name: "diners club", input: "30569309025904", pan: 30569309025904, kind: creditcard.KindDinersClub},
		{name: "diners club alt", input: "38520000023237", pan: 38520000023237, kind: creditcard.KindDinersClub},
		{name: "jcb", input: "3530111333300000", pan: 3530111333300000, kind: creditcard.KindJCB},
		{name: "jcb alt", input: "3566002020360505", pan: 3566002020360505, kind: creditcard.KindJCB},
		{name: "union pay 16", input: "6200000000000005", pan: 6200000000000005, kind: creditcard.KindUnionPay},
		{name: "union pay 19", input: "6200000000000000000", pan: 6200000000000000000, kind: creditcard.KindUnionPay},
		{name: "mir", input: "2200000000000004", pan: 2200000000000004, kind: creditcard.KindMir},
		{name: "mir alt", input: "2200999999999995", pan: 2200999999999995, kind: creditcard.KindMir},
		{name: "maestro uk", input: "6759649826438453", pan: 6759649826438453, kind: creditcard.KindMaestroUK},
		{name: "maestro 19", input: "6763990100000000015", pan: 6763990100000000015, kind: creditcard.KindMaestro},
		{name: "visa electron", input: "4026000000000002", pan: 4026000000000002, kind: creditcard.KindVisaElectron},
		{name: "dashes", input: "4111-1111-1111-1111", pan: 4111111111111111, kind: creditcard.KindVisa},
		{name: "spaces", input: "4111 1111 1111 1111", pan: 4111111111111111, kind: creditcard.KindVisa},
		{name: "mixed separators", input: " 4111-1111 1111--1111 ", pan: 4111111111111111, kind: creditcard.KindVisa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := creditcard.Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.pan, card.PAN())
			require.Equal(t, tt.kind, card.Kind())
			require.False(t, card.IsZero())
		})
	}
}

func TestParse_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason *creditcard.Reason
		offset int
		digits int
	}{
		{name: "broken check digit", input: "4111111111111112", reason: creditcard.ErrInvalidChecksum, offset: -1, digits: 16},
		{name: "broken check digit plus one", input: "4111111111111113", reason: creditcard.ErrInvalidChecksum, offset: -1, digits: 16},
		{name: "15 digit visa-like", input: "411111111111111", reason: creditcard.ErrInvalidChecksum, offset: -1, digits: 15},
		{name: "15 digits with dashes", input: "411-1111-1111-1111", reason: creditcard.ErrInvalidChecksum, offset: -1, digits: 15},
		{name: "20 digits", input: "41111111111111111111", reason: creditcard.ErrTooLong, offset: -1, digits: 20},
		{name: "20 digits with separators", input: "4111 1111 1111 1111 1111", reason: creditcard.ErrTooLong, offset: -1, digits: 20},
		{name: "letters first", input: "abcd1111111111111", reason: creditcard.ErrInvalidFormat, offset: 0, digits: 0},
		{name: "trailing letter", input: "4111111111111111a", reason: creditcard.ErrInvalidFormat, offset: 16, digits: 16},
		{name: "underscore separator", input: "4111_1111_1111_1111", reason: creditcard.ErrInvalidFormat, offset: 4, digits: 4},
		{name: "tab", input: "4111\t1111111111111", reason: creditcard.ErrInvalidFormat, offset: 4, digits: 4},
		{name: "non-ascii digit", input: "４111111111111111", reason: creditcard.ErrInvalidFormat, offset: 0, digits: 0},
		{name: "format wins over length", input: "12x", reason: creditcard.ErrInvalidFormat, offset: 2, digits: 2},
		{name: "empty", input: "", reason: creditcard.ErrTooShort, offset: -1, digits: 0},
		{name: "only separators", input: "- - -", reason: creditcard.ErrTooShort, offset: -1, digits: 0},
		{name: "11 digits", input: "41111111111", reason: creditcard.ErrTooShort, offset: -1, digits: 11},
		{name: "sequential 15", input: "123456789012345", reason: creditcard.ErrInvalidChecksum, offset: -1, digits: 15},
		{name: "sequential 17", input: "12345678901234567", reason: creditcard.ErrInvalidChecksum, offset: -1, digits: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := creditcard.Parse(tt.input)
			require.ErrorIs(t, err, tt.reason)
			require.True(t, card.IsZero())

			var perr *creditcard.ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.offset, perr.Offset)
			require.Equal(t, tt.digits, perr.Digits)
			require.Equal(t, tt.reason, creditcard.ReasonOf(err))
		})
	}
}

func TestParse_ErrorDoesNotEchoDigits(t *testing.T) {
	for _, input := range []string{"4111111111111112", "41111111111111111111", "4111111111111111a", "4111"} {
		_, err := creditcard.Parse(input)
		require.Error(t, err)
		require.NotContains(t, err.Error(), "4111")
	}
}

func TestParse_UnknownKind(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unassigned prefix", input: "7000000000000005"},
		{name: "visa prefix with 15 digits", input: "411111111111116"},
		{name: "leading zeros", input: "0000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := creditcard.Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, creditcard.KindUnknown, card.Kind())
		})
	}
}

func TestParse_PrefixRules(t *testing.T) {
	tests := []struct {
		prefix string
		length int
		kind   creditcard.Kind
	}{
		{"60400100", 16, creditcard.KindUkrCard},
		{"60420099", 19, creditcard.KindUkrCard},
		{"60420100", 16, creditcard.KindRuPay},
		{"506099", 16, creditcard.KindVerve},
		{"650002", 18, creditcard.KindVerve},
		{"507964", 19, creditcard.KindVerve},
		{"506099", 17, creditcard.KindUnknown},
		{"622126", 16, creditcard.KindDiscover},
		{"622925", 19, creditcard.KindDiscover},
		{"622125", 16, creditcard.KindUnionPay},
		{"417500", 16, creditcard.KindVisaElectron},
		{"417500", 13, creditcard.KindVisa},
		{"357111", 16, creditcard.KindLankaPay},
		{"357111", 17, creditcard.KindJCB},
		{"676770", 12, creditcard.KindMaestroUK},
		{"676774", 19, creditcard.KindMaestroUK},
		{"6011", 19, creditcard.KindDiscover},
		{"3528", 16, creditcard.KindJCB},
		{"3589", 19, creditcard.KindJCB},
		{"3590", 16, creditcard.KindUnknown},
		{"6759", 12, creditcard.KindMaestroUK},
		{"5018", 12, creditcard.KindMaestro},
		{"5020", 16, creditcard.KindMaestro},
		{"5038", 19, creditcard.KindMaestro},
		{"5893", 16, creditcard.KindMaestro},
		{"6304", 16, creditcard.KindMaestro},
		{"6761", 16, creditcard.KindMaestro},
		{"5019", 16, creditcard.KindDankort},
		{"5019", 17, creditcard.KindUnknown},
		{"2204", 19, creditcard.KindMir},
		{"2205", 16, creditcard.KindBorica},
		{"2205", 17, creditcard.KindUnknown},
		{"2221", 16, creditcard.KindMastercard},
		{"2720", 16, creditcard.KindMastercard},
		{"2721", 16, creditcard.KindUnknown},
		{"9792", 16, creditcard.KindTroy},
		{"4508", 16, creditcard.KindVisaElectron},
		{"4844", 16, creditcard.KindVisaElectron},
		{"4913", 16, creditcard.KindVisaElectron},
		{"4917", 16, creditcard.KindVisaElectron},
		{"1946", 16, creditcard.KindGPN},
		{"1946", 18, creditcard.KindGPN},
		{"644", 16, creditcard.KindDiscover},
		{"649", 19, creditcard.KindDiscover},
		{"508", 16, creditcard.KindRuPay},
		{"508", 17, creditcard.KindUnknown},
		{"636", 16, creditcard.KindInterPayment},
		{"637", 16, creditcard.KindInstaPayment},
		{"639", 16, creditcard.KindInstaPayment},
		{"34", 15, creditcard.KindAmericanExpress},
		{"37", 15, creditcard.KindAmericanExpress},
		{"34", 16, creditcard.KindUnknown},
		{"31", 19, creditcard.KindChinaTUnion},
		{"62", 16, creditcard.KindUnionPay},
		{"30", 14, creditcard.KindDinersClub},
		{"36", 19, creditcard.KindDinersClub},
		{"39", 14, creditcard.KindDinersClub},
		{"65", 16, creditcard.KindDiscover},
		{"60", 16, creditcard.KindRuPay},
		{"60", 18, creditcard.KindGPN},
		{"81", 16, creditcard.KindRuPay},
		{"82", 16, creditcard.KindRuPay},
		{"51", 16, creditcard.KindMastercard},
		{"55", 16, creditcard.KindMastercard},
		{"50", 16, creditcard.KindGPN},
		{"56", 18, creditcard.KindGPN},
		{"58", 19, creditcard.KindGPN},
		{"63", 16, creditcard.KindGPN},
		{"4", 19, creditcard.KindVisa},
		{"1", 15, creditcard.KindUATP},
		{"1", 16, creditcard.KindUnknown},
		{"9", 16, creditcard.KindUnknown},
		{"2", 16, creditcard.KindUnknown},
	}

	for _, tt := range tests {
		input := number(t, tt.prefix, tt.length)
		t.Run(input, func(t *testing.T) {
			card, err := creditcard.Parse(input)
			require.NoError(t, err)
			require.Equal(t, tt.kind, card.Kind(), "prefix %s, %d digits", tt.prefix, tt.length)
			require.Equal(t, tt.kind, creditcard.Classify(input))
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"4111111111111111",
		"4111 1111 1111 1111",
		"4222222222222",
		"6763990100000000015",
		"0000000000000000",
		"0000411111111111116",
		"7000000000000005",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			card, err := creditcard.Parse(input)
			require.NoError(t, err)

			again, err := creditcard.Parse(card.String())
			require.NoError(t, err)
			require.Equal(t, card, again)
			require.True(t, card.Equal(again))
			require.Len(t, card.String(), card.Len())
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	for _, input := range []string{"4111111111111111", "6011000990139424", "7000000000000005"} {
		first, err := creditcard.Parse(input)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			next, err := creditcard.Parse(input)
			require.NoError(t, err)
			require.Equal(t, first.Kind(), next.Kind())
		}
	}
}

func TestCreditCard_String(t *testing.T) {
	require.Equal(t, "4111111111111111", creditcard.MustParse("4111-1111-1111-1111").String())
	require.Equal(t, "0000000000000000", creditcard.MustParse("0000000000000000").String())
	require.Empty(t, creditcard.CreditCard{}.String())
}

func TestCreditCard_Equal(t *testing.T) {
	a := creditcard.MustParse("4111111111111111")
	b := creditcard.MustParse("4111 1111 1111 1111")
	c := creditcard.MustParse("5555555555554444")

	require.True(t, a.Equal(b))
	require.True(t, a == b)
	require.False(t, a.Equal(c))
	// same value, different digit count
	require.False(t, creditcard.MustParse("0000411111111111116").Equal(creditcard.MustParse("000411111111111116")))
}

func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { creditcard.MustParse("4111111111111112") })
	require.NotPanics(t, func() { creditcard.MustParse("4111111111111111") })
}

func TestClassify_InvalidInput(t *testing.T) {
	require.Equal(t, creditcard.KindUnknown, creditcard.Classify("4111"))
	require.Equal(t, creditcard.KindUnknown, creditcard.Classify("4111-1111-1111-1111"))
	require.Equal(t, creditcard.KindUnknown, creditcard.Classify("41111111111111111111"))
	// checksum is not part of classification
	require.Equal(t, creditcard.KindVisa, creditcard.Classify("4111111111111112"))
}

func TestCreditCard_Text(t *testing.T) {
	card := creditcard.MustParse("378282246310005")

	text, err := card.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "378282246310005", string(text))

	var decoded creditcard.CreditCard
	require.NoError(t, decoded.UnmarshalText([]byte("3782-822463-10005")))
	require.Equal(t, card, decoded)

	require.ErrorIs(t, decoded.UnmarshalText([]byte("378282246310006")), creditcard.ErrInvalidChecksum)
	require.Equal(t, card, decoded, "failed unmarshal must not modify the receiver")
}

func BenchmarkParse(b *testing.B) {
	inputs := []struct {
		name  string
		input string
	}{
		{name: "too short", input: "12345678901"},
		{name: "too long", input: "12345678901234567890"},
		{name: "invalid", input: "1234567890123456"},
		{name: "valid", input: "4111111111111111"},
	}

	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = creditcard.Parse(in.input)
			}
		})
	}
}
