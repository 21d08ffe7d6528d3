package particle

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// ProgrammaticName converts a particle display name into a string safe
// to use as a variable name.
func ProgrammaticName(name string) string {
	if strings.HasSuffix(name, "0") {
		name = strings.TrimSuffix(name, "0") + "_0"
	}
	if strings.Contains(name, "~") {
		name = strings.ReplaceAll(name, "~", "") + "_bar"
	}
	r := strings.NewReplacer(
		")(", "_",
		"(", "_",
		")", "",
		"*", "st",
		"'", "p",
		"::", "_",
		"/", "",
		"--", "_mm",
		"++", "_pp",
		"-", "_minus",
		"+", "_plus",
	)
	return r.Replace(name)
}

// StrWithUnc formats a value with its asymmetric uncertainty following
// the PDG rounding rule. Nil uncertainties yield the bare value.
func StrWithUnc(value float64, upper, lower *float64) string {
	if upper == nil {
		return trimFloat(value)
	}
	up := math.Abs(*upper)
	lo := up
	if lower != nil {
		lo = math.Abs(*lower)
	}
	err := math.Min(up, lo)
	if err == 0 {
		return trimFloat(value)
	}

	valueDigits := int(math.Floor(math.Log10(value)))
	errorDigits := int(math.Floor(math.Log10(err) - math.Log10(2.5)))
	pureErrorDigits := int(math.Floor(math.Log10(err)))

	var fsv, fse string
	if -3 < valueDigits && valueDigits < 6 {
		if errorDigits < 0 {
			fsv = fmt.Sprintf("%%.%df", -errorDigits)
		} else {
			fsv = "%.0f"
		}
		fse = fsv
	} else {
		fsv = fmt.Sprintf("%%.%de", absDiff(errorDigits, valueDigits))
		if errorDigits == pureErrorDigits {
			fse = "%.0e"
		} else {
			fse = "%.1e"
		}
	}

	if up == lo {
		return fmt.Sprintf(fsv+" ± "+fse, value, up)
	}
	return fmt.Sprintf(fsv+" + "+fse+" - "+fse, value, up, lo)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// trimFloat prints a float without trailing zeros.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}

// latexSymbols maps the LaTeX macros appearing in the bundled tables
// to HTML entities.
var latexSymbols = []struct{ macro, html string }{
	{`\alpha`, "&alpha;"}, {`\beta`, "&beta;"}, {`\gamma`, "&gamma;"},
	{`\delta`, "&delta;"}, {`\epsilon`, "&epsilon;"}, {`\eta`, "&eta;"},
	{`\theta`, "&theta;"}, {`\lambda`, "&lambda;"}, {`\mu`, "&mu;"},
	{`\nu`, "&nu;"}, {`\xi`, "&xi;"}, {`\pi`, "&pi;"},
	{`\rho`, "&rho;"}, {`\sigma`, "&sigma;"}, {`\tau`, "&tau;"},
	{`\upsilon`, "&upsilon;"}, {`\phi`, "&phi;"}, {`\chi`, "&chi;"},
	{`\psi`, "&psi;"}, {`\omega`, "&omega;"},
	{`\Gamma`, "&Gamma;"}, {`\Delta`, "&Delta;"}, {`\Theta`, "&Theta;"},
	{`\Lambda`, "&Lambda;"}, {`\Xi`, "&Xi;"}, {`\Pi`, "&Pi;"},
	{`\Sigma`, "&Sigma;"}, {`\Upsilon`, "&Upsilon;"}, {`\Phi`, "&Phi;"},
	{`\Psi`, "&Psi;"}, {`\Omega`, "&Omega;"},
	{`\overline`, ""}, {`\bar`, ""}, {`\prime`, "&prime;"},
}

var (
	latexSub = regexp.MustCompile(`_\{([^{}]*)\}`)
	latexSup = regexp.MustCompile(`\^\{([^{}]*)\}`)
)

// LatexToHTMLName converts a LaTeX display name to HTML with sub- and
// superscript tags.
func LatexToHTMLName(latex string) string {
	s := latex
	s = latexSub.ReplaceAllString(s, "<SUB>$1</SUB>")
	s = latexSup.ReplaceAllString(s, "<SUP>$1</SUP>")
	for _, sym := range latexSymbols {
		s = strings.ReplaceAll(s, sym.macro, sym.html)
	}
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	return s
}
