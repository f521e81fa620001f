// Package tables holds the fixed reference data of the INRS simplified method
// (NTP 937): phrase and material danger classes, scoring tables, matrices and
// characterization thresholds. Everything here is constant; lookups are total
// and clamp out-of-range classes instead of rejecting them.
package tables

import (
	"strings"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
)

// rPhraseDangerClass maps legacy R-phrase codes (upper case) to a danger class
var rPhraseDangerClass = map[string]entities.DangerClass{
	// Class 5
	"R26": 5, "R32": 5, "R39/26": 5, "R39/26/27": 5, "R39/26/27/28": 5,
	"R39/26/28": 5, "R45": 5, "R46": 5, "R49": 5, "R61": 5,
	"R26/27": 5, "R26/28": 5, "R26/27/28": 5,
	// Class 4
	"R23": 4, "R23/24": 4, "R23/25": 4, "R23/24/25": 4,
	"R24": 4, "R24/25": 4, "R25": 4, "R27": 4, "R27/28": 4, "R28": 4,
	"R35": 4, "R39": 4, "R39/23": 4, "R39/23/24": 4,
	"R39/23/24/25": 4, "R39/23/25": 4, "R39/24": 4, "R39/24/25": 4,
	"R39/25": 4, "R39/27": 4, "R39/27/28": 4, "R39/28": 4,
	"R40": 4, "R42": 4, "R42/43": 4, "R48/23": 4,
	"R48/23/24": 4, "R48/23/24/25": 4, "R48/23/25": 4,
	"R48/24": 4, "R48/24/25": 4, "R48/25": 4,
	"R60": 4, "R62": 4, "R63": 4,
	// Class 3
	"R20": 3, "R20/21": 3, "R20/22": 3, "R20/21/22": 3,
	"R21": 3, "R21/22": 3, "R22": 3,
	"R34": 3, "R37": 3, "R41": 3, "R43": 3,
	"R48/20": 3, "R48/20/21": 3, "R48/20/21/22": 3, "R48/20/22": 3,
	"R48/21": 3, "R48/21/22": 3, "R48/22": 3,
	"R68": 3, "R68/20": 3, "R68/20/21": 3, "R68/20/21/22": 3,
	"R68/20/22": 3, "R68/21": 3, "R68/21/22": 3, "R68/22": 3,
	// Class 2
	"R36": 2, "R36/37": 2, "R36/37/38": 2, "R36/38": 2,
	"R38": 2, "R65": 2, "R67": 2,
	// Class 1
	"R33": 1, "R66": 1,
}

// hPhraseDangerClass maps CLP H-phrase codes (exact case) to a danger class
var hPhraseDangerClass = map[string]entities.DangerClass{
	// Class 5
	"H330": 5, "H340": 5, "H350": 5, "H350i": 5, "H360": 5,
	"H360F": 5, "H360D": 5, "H360FD": 5, "H360Fd": 5, "H360Df": 5,
	"H370": 5,
	// Class 4
	"H300": 4, "H301": 4, "H310": 4, "H311": 4, "H314": 4,
	"H331": 4, "H334": 4, "H341": 4, "H351": 4,
	"H361": 4, "H361f": 4, "H361d": 4, "H361fd": 4,
	"H371": 4, "H372": 4, "H300+H310": 4, "H300+H330": 4,
	"H310+H330": 4, "H300+H310+H330": 4,
	// Class 3
	"H302": 3, "H312": 3, "H315": 3, "H317": 3, "H318": 3,
	"H332": 3, "H335": 3, "H336": 3, "H373": 3,
	"H301+H311": 3, "H301+H331": 3, "H311+H331": 3,
	"H301+H311+H331": 3, "H362": 3,
	// Class 2
	"H304": 2, "H315+H319": 2, "H319": 2,
	// Class 1
	"H303": 1, "H313": 1, "H333": 1,
}

var (
	dermalRPhrases       = phraseSet("R21", "R24", "R27", "R34", "R35", "R38", "R43")
	dermalHPhrases       = phraseSet("H312", "H314", "H315", "H317", "H318")
	carcinogenicRPhrases = phraseSet("R45", "R49", "R46")
	carcinogenicHPhrases = phraseSet("H340", "H350", "H350i")
)

// NormalizeRPhrase trims and upper-cases a legacy R-phrase code.
// R-phrases were historically written inconsistently.
func NormalizeRPhrase(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeHPhrase trims a CLP H-phrase code. Case is significant ("H350i", "H360Fd").
func NormalizeHPhrase(code string) string {
	return strings.TrimSpace(code)
}

// RPhraseDangerClass returns the danger class of a legacy R-phrase.
// Unknown codes report ok=false and contribute nothing.
func RPhraseDangerClass(code string) (entities.DangerClass, bool) {
	class, ok := rPhraseDangerClass[NormalizeRPhrase(code)]
	return class, ok
}

// HPhraseDangerClass returns the danger class of a CLP H-phrase.
// Unknown codes report ok=false and contribute nothing.
func HPhraseDangerClass(code string) (entities.DangerClass, bool) {
	class, ok := hPhraseDangerClass[NormalizeHPhrase(code)]
	return class, ok
}

// IsDermalRPhrase reports whether an R-phrase denotes dermal toxicity
func IsDermalRPhrase(code string) bool {
	_, ok := dermalRPhrases[NormalizeRPhrase(code)]
	return ok
}

// IsDermalHPhrase reports whether an H-phrase denotes dermal toxicity
func IsDermalHPhrase(code string) bool {
	_, ok := dermalHPhrases[NormalizeHPhrase(code)]
	return ok
}

// IsCarcinogenicRPhrase reports whether an R-phrase flags a category 1A/1B carcinogen or mutagen
func IsCarcinogenicRPhrase(code string) bool {
	_, ok := carcinogenicRPhrases[NormalizeRPhrase(code)]
	return ok
}

// IsCarcinogenicHPhrase reports whether an H-phrase flags a category 1A/1B carcinogen or mutagen
func IsCarcinogenicHPhrase(code string) bool {
	_, ok := carcinogenicHPhrases[NormalizeHPhrase(code)]
	return ok
}

func phraseSet(codes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}
