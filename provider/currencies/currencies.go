package currencies

import (
	"maps"
	"slices"
	"sync"

	"github.com/martinjakubec/fxproxy/storage/types"
)

// referenceRates is the provider's published example snapshot for a USD base.
// Its keys double as the supported-currency set; its values feed the
// synthetic-data fallback
var referenceRates = map[types.Currency]float64{
	"AED": 3.6725,
	"AFN": 73.7594,
	"ALL": 94.996,
	"AMD": 396.4649,
	"ANG": 1.79,
	"AOA": 920.2889,
	"ARS": 1059.38,
	"AUD": 1.5756,
	"AWG": 1.79,
	"AZN": 1.7001,
	"BAM": 1.8763,
	"BBD": 2,
	"BDT": 121.5099,
	"BGN": 1.8761,
	"BHD": 0.376,
	"BIF": 2966.4628,
	"BMD": 1,
	"BND": 1.3425,
	"BOB": 6.9314,
	"BRL": 5.7068,
	"BSD": 1,
	"BTN": 86.9444,
	"BWP": 13.8413,
	"BYN": 3.2706,
	"BZD": 2,
	"CAD": 1.4226,
	"CDF": 2856.593,
	"CHF": 0.9042,
	"CLP": 949.6064,
	"CNY": 7.2833,
	"COP": 4103.9364,
	"CRC": 506.2286,
	"CUP": 24,
	"CVE": 105.7822,
	"CZK": 24.0828,
	"DJF": 177.721,
	"DKK": 7.1567,
	"DOP": 62.2151,
	"DZD": 135.0055,
	"EGP": 50.6188,
	"ERN": 15,
	"ETB": 127.1346,
	"EUR": 0.9594,
	"FJD": 2.2964,
	"FKP": 0.7944,
	"FOK": 7.1563,
	"GBP": 0.7945,
	"GEL": 2.8168,
	"GGP": 0.7944,
	"GHS": 15.5534,
	"GIP": 0.7944,
	"GMD": 72.6177,
	"GNF": 8631.9641,
	"GTQ": 7.7228,
	"GYD": 210.0302,
	"HKD": 7.7772,
	"HNL": 25.5728,
	"HRK": 7.2282,
	"HTG": 131.1428,
	"HUF": 385.9553,
	"IDR": 16357.8513,
	"ILS": 3.5445,
	"IMP": 0.7944,
	"INR": 86.9495,
	"IQD": 1310.5526,
	"IRR": 41994.1949,
	"ISK": 140.5371,
	"JEP": 0.7944,
	"JMD": 157.6245,
	"JOD": 0.709,
	"JPY": 151.499,
	"KES": 129.24,
	"KGS": 87.4259,
	"KHR": 4016.4105,
	"KID": 1.5754,
	"KMF": 471.9669,
	"KRW": 1440.8242,
	"KWD": 0.3089,
	"KYD": 0.8333,
	"KZT": 502.5209,
	"LAK": 21846.6298,
	"LBP": 89500,
	"LKR": 296.4747,
	"LRD": 199.4526,
	"LSL": 18.5255,
	"LYD": 4.8931,
	"MAD": 9.9825,
	"MDL": 18.6688,
	"MGA": 4739.1675,
	"MKD": 58.9363,
	"MMK": 2100.6407,
	"MNT": 3444.9998,
	"MOP": 8.0105,
	"MRU": 39.9204,
	"MUR": 46.4997,
	"MVR": 15.4652,
	"MWK": 1740.5872,
	"MXN": 20.427,
	"MYR": 4.4418,
	"MZN": 63.9932,
	"NAD": 18.5255,
	"NGN": 1506.8265,
	"NIO": 36.8236,
	"NOK": 11.1404,
	"NPR": 139.111,
	"NZD": 1.7529,
	"OMR": 0.3845,
	"PAB": 1,
	"PEN": 3.6853,
	"PGK": 4.028,
	"PHP": 58.117,
	"PKR": 279.395,
	"PLN": 4.0005,
	"PYG": 7899.6448,
	"QAR": 3.64,
	"RON": 4.768,
	"RSD": 112.3288,
	"RUB": 90.0818,
	"RWF": 1431.057,
	"SAR": 3.75,
	"SBD": 8.6452,
	"SCR": 14.6915,
	"SDG": 544.675,
	"SEK": 10.731,
	"SGD": 1.3426,
	"SHP": 0.7944,
	"SLE": 22.8566,
	"SLL": 22856.6481,
	"SOS": 572.0792,
	"SRD": 35.6294,
	"SSP": 4415.809,
	"STN": 23.504,
	"SYP": 12977.7073,
	"SZL": 18.5255,
	"THB": 33.7111,
	"TJS": 10.9326,
	"TMT": 3.5025,
	"TND": 3.1734,
	"TOP": 2.386,
	"TRY": 36.3254,
	"TTD": 6.7718,
	"TVD": 1.5754,
	"TWD": 32.7565,
	"TZS": 2583.9549,
	"UAH": 41.7015,
	"UGX": 3678.4774,
	"USD": 1,
	"UYU": 43.2826,
	"UZS": 12972.908,
	"VES": 62.5107,
	"VND": 25527.2982,
	"VUV": 123.197,
	"WST": 2.8123,
	"XAF": 629.2892,
	"XCD": 2.7,
	"XDR": 0.7638,
	"XOF": 629.2892,
	"XPF": 114.4806,
	"YER": 247.8036,
	"ZAR": 18.5272,
	"ZMW": 28.2409,
	"ZWL": 26.4561,
}

var sortedCodes = sync.OnceValue(func() []types.Currency {
	codes := slices.Collect(maps.Keys(referenceRates))
	slices.Sort(codes)

	return codes
})

// Codes returns the supported currency codes in ascending order
func Codes() []types.Currency {
	return slices.Clone(sortedCodes())
}

// Supported reports whether the code is in the supported set.
// Matching is exact and case-sensitive against the uppercase list
func Supported(code types.Currency) bool {
	_, ok := referenceRates[code]

	return ok
}

// ReferenceRates returns a copy of the fixed reference conversion table
func ReferenceRates() map[types.Currency]float64 {
	return maps.Clone(referenceRates)
}
