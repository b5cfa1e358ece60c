package ingestion

import (
	"regexp"
	"strings"

	"github.com/mkale/jobshield/internal/types"
)

var (
	labeledTitleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)job title:\s*([^\n\r]+)`),
		regexp.MustCompile(`(?i)role:\s*([^\n\r]+)`),
		regexp.MustCompile(`(?i)about the job:\s*([^\n\r]+)`),
	}
	labeledCompanyRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)company name:\s*([^\n\r]+)`),
		regexp.MustCompile(`(?i)company:\s*([^\n\r]+)`),
	}
	emailRe      = regexp.MustCompile(`[\w.-]+@([\w.-]+\.\w+)`)
	salaryRe     = regexp.MustCompile(`[$₹]\s*[\d,]+`)
	trailPunctRe = regexp.MustCompile(`[.,;:!?]+$`)
)

// titleSkipPatterns are portal boilerplate lines that are never the title.
var titleSkipPatterns = []string{
	"company logo", "duration", "month", "remote", "hiring office", "applied",
	"internship highlights", "description", "key responsibilities", "skill",
	"preferred candidate", "industry type", "department", "employment type",
	"education", "key skills", "report this job", "about company",
	"company info", "address", "minimum qualifications", "preferred qualifications",
	"responsibilities include", "you will", "what you will do",
}

// companyKeywords mark a line as likely naming a company.
var companyKeywords = []string{
	"ltd", "inc", "corp", "llc", "technologies", "solutions",
	"systems", "tech", "software", "pvt",
}

// knownCities anchor the location heuristic.
var knownCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Bengaluru", "Chennai", "Hyderabad",
	"Pune", "Kolkata", "Ahmedabad", "Jaipur", "Lucknow", "Nagpur", "Indore",
	"Bhopal", "Patna", "Vadodara", "Ghaziabad", "Chandigarh", "Coimbatore",
	"Mysore", "Gurgaon", "Gurugram", "Noida", "Greater Noida", "Navi Mumbai",
}

var indianStates = []string{
	"maharashtra", "karnataka", "tamil nadu", "telangana", "gujarat",
	"rajasthan", "uttar pradesh", "madhya pradesh", "west bengal",
	"punjab", "haryana", "india",
}

// ParsePosting extracts structured fields from free-form posting text.
// Extraction is best effort: a field that cannot be found gets a neutral
// placeholder rather than failing the parse.
func ParsePosting(raw string) *types.JobPosting {
	text := CleanText(raw)
	lines := strings.Split(text, "\n")

	return &types.JobPosting{
		Title:         extractTitle(text, lines),
		Company:       extractCompany(text, lines),
		CompanyDomain: extractDomain(text),
		Location:      extractLocation(lines),
		Description:   text,
		Requirements:  extractRequirements(lines),
		Salary:        extractSalary(lines),
		JobPortal:     DetectPortal(text),
	}
}

func extractTitle(text string, lines []string) string {
	for _, re := range labeledTitleRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	// Repeated short lines near the top are usually the title rendered
	// twice by the portal.
	counts := map[string]int{}
	for _, line := range firstN(lines, 15) {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 100 {
			continue
		}
		if containsAnyFold(line, titleSkipPatterns) || strings.Contains(line, "@") ||
			strings.Contains(line, "http") || strings.HasPrefix(line, "₹") || strings.HasPrefix(line, "$") {
			continue
		}
		counts[line]++
	}
	for line, n := range counts {
		if n >= 2 {
			return trailPunctRe.ReplaceAllString(line, "")
		}
	}

	// First plausible line wins.
	skipStarts := []string{
		"about", "company", "location", "salary", "requirements",
		"qualifications", "responsibilities", "benefits", "minimum",
		"preferred", "experience", "skills", "education",
	}
	for _, line := range firstN(lines, 10) {
		line = strings.TrimSpace(line)
		if line == "" || hasAnyPrefixFold(line, skipStarts) {
			continue
		}
		if len(line) > 3 && len(line) < 100 && !strings.Contains(line, "@") && !strings.Contains(line, "http") {
			return line
		}
	}

	return "Unknown Job Title"
}

func extractCompany(text string, lines []string) string {
	for _, re := range labeledCompanyRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	// Repeated company-looking lines near the top.
	counts := map[string]int{}
	for _, line := range firstN(lines, 12) {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 50 {
			continue
		}
		if containsAnyFold(line, titleSkipPatterns) || strings.Contains(line, "@") || strings.Contains(line, "http") {
			continue
		}
		if containsAnyFold(line, companyKeywords) {
			counts[line]++
		}
	}
	for line, n := range counts {
		if n >= 2 {
			return line
		}
	}

	for _, line := range firstN(lines, 8) {
		line = strings.TrimSpace(line)
		if line == "" || hasAnyPrefixFold(line, []string{"job title", "location", "salary", "about the job"}) {
			continue
		}
		if containsAnyFold(line, companyKeywords) {
			return line
		}
	}

	return "Unknown Company"
}

// extractDomain takes the domain of the first email address in the text.
func extractDomain(text string) string {
	if m := emailRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func extractLocation(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "location") || strings.Contains(lower, "city") {
			if _, after, ok := strings.Cut(line, ":"); ok {
				if loc := strings.TrimSpace(after); loc != "" {
					return loc
				}
			}
		}
	}

	for _, line := range firstN(lines, 10) {
		line = strings.TrimSpace(line)
		for _, city := range knownCities {
			if strings.EqualFold(line, city) {
				return city
			}
			if containsWordFold(line, city) {
				return city
			}
		}
	}

	for _, line := range firstN(lines, 15) {
		line = strings.TrimSpace(line)
		if line == "" || containsAnyFold(line, titleSkipPatterns) {
			continue
		}
		if len(line) < 30 && !strings.HasPrefix(line, "₹") && !strings.HasPrefix(line, "$") && !strings.Contains(line, "@") {
			if containsAnyFold(line, indianStates) {
				return line
			}
		}
	}

	return "Not Specified"
}

// extractRequirements captures the lines following a requirements or
// skills heading, up to the next unrelated section.
func extractRequirements(lines []string) string {
	var out []string
	capture := false
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "requirement") || strings.Contains(lower, "skill") {
			capture = true
			continue
		}
		if capture && strings.TrimSpace(line) != "" {
			if containsAnyFold(line, []string{"salary", "location", "apply"}) {
				break
			}
			out = append(out, strings.TrimSpace(line))
		}
	}
	return strings.Join(out, " ")
}

func extractSalary(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "salary") || strings.Contains(line, "$") || strings.Contains(line, "₹") {
			if m := salaryRe.FindString(line); m != "" {
				return m
			}
			if _, after, ok := strings.Cut(line, ":"); ok {
				return strings.TrimSpace(after)
			}
			return strings.TrimSpace(line)
		}
	}
	return "Not Specified"
}

func firstN(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}

func containsAnyFold(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func hasAnyPrefixFold(s string, prefixes []string) bool {
	lower := strings.ToLower(s)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// containsWordFold reports whether word occurs in s on word boundaries,
// case-insensitively.
func containsWordFold(s, word string) bool {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return re.MatchString(s)
}
