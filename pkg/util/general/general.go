package general

import (
	"bytes"
	"math"
	"math/rand"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/template"
	"time"

	"sitelabour/internal/abstraction"
	"sitelabour/pkg/constant"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// validation email
func IsValidEmail(email string) bool {
	emailRegex := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	re := regexp.MustCompile(emailRegex)
	return re.MatchString(email)
}

// IsValidDate reports whether value is a calendar date in YYYY-MM-DD form.
func IsValidDate(value string) bool {
	_, err := time.Parse(constant.DATE_LAYOUT, value)
	return err == nil
}

// Now ...
func Now() *time.Time {
	now := time.Now()
	return &now
}

// NowUTC ...
func NowUTC() *time.Time {
	now := time.Now().UTC()
	return &now
}

// StartOfDay ...
func StartOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DateCutoff returns the YYYY-MM-DD string windowDays-1 days before today,
// so a 7 day window covers today plus the six days before it.
func DateCutoff(now time.Time, windowDays int) string {
	return StartOfDay(now).AddDate(0, 0, -(windowDays - 1)).Format(constant.DATE_LAYOUT)
}

func FormatWithZWithoutChangingTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05") + "Z"
}

func RandSeq(n int) string {
	var letters = []rune("123456789abcdefghijklmnopqrstuvwxyz")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// generate random password
func GeneratePassword(passwordLength, minSpecialChar, minNum, minUpperCase, minLowerCase int) string {
	var password strings.Builder
	var lowerCharSet string = "abcdedfghijklmnopqrstuvwxyz"
	var upperCharSet string = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var specialCharSet string = "!@#$%&*"
	var numberSet string = "0123456789"
	var allCharSet string = lowerCharSet + upperCharSet + specialCharSet + numberSet

	for i := 0; i < minSpecialChar; i++ {
		random := rand.Intn(len(specialCharSet))
		password.WriteString(string(specialCharSet[random]))
	}
	for i := 0; i < minNum; i++ {
		random := rand.Intn(len(numberSet))
		password.WriteString(string(numberSet[random]))
	}
	for i := 0; i < minUpperCase; i++ {
		random := rand.Intn(len(upperCharSet))
		password.WriteString(string(upperCharSet[random]))
	}
	for i := 0; i < minLowerCase; i++ {
		random := rand.Intn(len(lowerCharSet))
		password.WriteString(string(lowerCharSet[random]))
	}

	remainingLength := passwordLength - minSpecialChar - minNum - minUpperCase - minLowerCase
	for i := 0; i < remainingLength; i++ {
		random := rand.Intn(len(allCharSet))
		password.WriteString(string(allCharSet[random]))
	}
	inRune := []rune(password.String())
	rand.Shuffle(len(inRune), func(i, j int) {
		inRune[i], inRune[j] = inRune[j], inRune[i]
	})
	return string(inRune)
}

func SanitizeStringOfAlphabet(input string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' {
			return r
		}
		return -1
	}, input)
}

func SanitizeStringOfNumber(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)
}

func SanitizeString(input string) string {
	re := regexp.MustCompile(`[%'";()=<>` + "`" + `#\[\]]`)
	sanitized := re.ReplaceAllString(input, "")

	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '_' ||
			r == ' ' ||
			r == '-' ||
			r == '.' ||
			r == ':' ||
			r == '/' ||
			r == '@' {
			return r
		}
		return -1
	}, sanitized)
}

func SanitizeStringDate(input string) string {
	re := regexp.MustCompile(`[^0-9\-]`)
	sanitized := re.ReplaceAllString(input, "")

	dateFormat := `^\d{4}-\d{2}-\d{2}$`
	dateRe := regexp.MustCompile(dateFormat)
	if !dateRe.MatchString(sanitized) {
		return ""
	}
	return sanitized
}

func ProcessWhereParam(ctx *abstraction.Context, searchType string, whereStr string) (string, map[string]interface{}) {
	var (
		where      = "1=@where"
		whereParam = map[string]interface{}{
			"where": 1,
			"false": false,
			"true":  true,
		}
	)

	if whereStr != "" {
		where += " AND " + whereStr
	}

	// fill query search
	if ctx.QueryParam("search") != "" {
		val := "%" + strings.ToLower(SanitizeString(ctx.QueryParam("search"))) + "%"
		switch searchType {
		case "project":
			where += " AND (LOWER(name) LIKE @search_name)"
			whereParam["search_name"] = val
		case "labour_team":
			where += " AND (LOWER(name) LIKE @search_name)"
			whereParam["search_name"] = val
		case "labour_type":
			where += " AND (LOWER(type_name) LIKE @search_type_name)"
			whereParam["search_type_name"] = val
		case "user":
			where += " AND (LOWER(name) LIKE @search_name OR LOWER(email) LIKE @search_email)"
			whereParam["search_name"] = val
			whereParam["search_email"] = val
		case "work_report":
			where += " AND (LOWER(description) LIKE @search_description)"
			whereParam["search_description"] = val
		}
	}

	// fill query filter
	if ctx.QueryParam("id") != "" {
		val, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("id")))
		where += " AND id = @id"
		whereParam["id"] = val
	}
	if ctx.QueryParam("name") != "" {
		val := "%" + SanitizeString(ctx.QueryParam("name")) + "%"
		where += " AND LOWER(name) LIKE @name"
		whereParam["name"] = val
	}
	if ctx.QueryParam("email") != "" {
		val := "%" + SanitizeString(ctx.QueryParam("email")) + "%"
		where += " AND LOWER(email) LIKE @email"
		whereParam["email"] = val
	}
	if ctx.QueryParam("project_id") != "" {
		val, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("project_id")))
		where += " AND project_id = @project_id"
		whereParam["project_id"] = val
	}
	if ctx.QueryParam("team_id") != "" {
		val, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("team_id")))
		where += " AND team_id = @team_id"
		whereParam["team_id"] = val
	}
	if ctx.QueryParam("labour_type_id") != "" {
		val, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("labour_type_id")))
		where += " AND labour_type_id = @labour_type_id"
		whereParam["labour_type_id"] = val
	}
	if ctx.QueryParam("user_id") != "" {
		val, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("user_id")))
		where += " AND user_id = @user_id"
		whereParam["user_id"] = val
	}
	if ctx.QueryParam("role_id") != "" {
		val, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("role_id")))
		where += " AND role_id = @role_id"
		whereParam["role_id"] = val
	}
	if ctx.QueryParam("date") != "" {
		val := SanitizeStringDate(ctx.QueryParam("date"))
		if val != "" {
			where += " AND date = @date"
			whereParam["date"] = val
		}
	}
	if ctx.QueryParam("date_from") != "" && ctx.QueryParam("date_to") != "" {
		from := SanitizeStringDate(ctx.QueryParam("date_from"))
		to := SanitizeStringDate(ctx.QueryParam("date_to"))
		if from != "" && to != "" {
			where += " AND date BETWEEN @date_from AND @date_to"
			whereParam["date_from"] = from
			whereParam["date_to"] = to
		}
	}

	return where, whereParam
}

func ProcessLimitOffset(ctx *abstraction.Context, no_paging bool) (int, int) {
	var (
		limit  = 10
		offset = 0
	)
	if ctx.QueryParam("limit") != "" {
		l, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("limit")))
		limit = l
	}
	if ctx.QueryParam("offset") != "" {
		o, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("offset")))
		offset = o
	}
	if no_paging {
		limit = math.MaxInt64
	} else if ctx.QueryParam("no_paging") == "yes" {
		limit = math.MaxInt64
	}
	return limit, offset
}

func ProcessOrder(ctx *abstraction.Context) string {
	var (
		o  = "id"
		ob = "ASC"
	)
	if ctx.QueryParam("order") != "" {
		o = ValidationOrder(ctx.QueryParam("order"))
	}
	if ctx.QueryParam("order_by") != "" {
		ob = ValidationOrderBy(ctx.QueryParam("order_by"))
	}
	return o + " " + ob
}

func ValidationOrder(str string) string {
	str = SanitizeString(str)
	str = strings.ToLower(str)
	orderStack := []string{"id", "name", "type_name", "email", "project_id", "team_id", "labour_type_id", "user_id", "role_id", "date", "created_at", "updated_at"}
	for _, item := range orderStack {
		if item == str {
			return str
		}
	}
	return "id"
}

func ValidationOrderBy(str string) string {
	str = SanitizeStringOfAlphabet(str)
	str = strings.ToUpper(str)
	orderStack := []string{"ASC", "DESC"}
	for _, item := range orderStack {
		if item == str {
			return str
		}
	}
	return "ASC"
}

func ParseTemplateEmailToHtml(templateFileName string, data interface{}) string {
	t, err := template.ParseFiles(templateFileName)
	if err != nil {
		logrus.Error("Error parsing template email: ", err.Error())
		return ""
	}
	buf := new(bytes.Buffer)
	if err = t.Execute(buf, data); err != nil {
		logrus.Error("Error parsing template email: ", err.Error())
		return ""
	}
	return buf.String()
}

func ParseTemplateEmailToPlainText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "br", "p", "div", "hr":
				buf.WriteString("\n")
			case "a":
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					f(c)
				}
				for _, attr := range n.Attr {
					if attr.Key == "href" {
						buf.WriteString(" [" + attr.Val + "]")
						break
					}
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)
	output := buf.String()
	output = regexp.MustCompile(`\n\s*\n`).ReplaceAllString(output, "\n\n")
	return strings.TrimSpace(output)
}

func ProcessHTMLResponseEmail(filePath, placeholder, value string) string {
	content, err := os.ReadFile(filePath)
	if err != nil {
		logrus.Error("Error reading html response template: ", err.Error())
		return value
	}
	return strings.Replace(string(content), placeholder, value, -1)
}
