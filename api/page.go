package api

import (
	"html/template"
	"net/http"

	"github.com/Goofygiraffe06/breachcheck/internal/logging"
	"github.com/Goofygiraffe06/breachcheck/internal/status"
)

// Form field and element ids shared with the page template.
const (
	FieldName     = "nameInput"
	FieldPhone    = "phoneInput"
	FieldPassword = "checkPassword"
	ResultElement = "checkResult"
)

type pageData struct {
	Name   string
	Phone  string
	Result status.Status
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Password Breach Check</title>
</head>
<body>
<h1>Password Breach Check</h1>
<form method="post" action="/check">
  <input type="text" id="nameInput" name="nameInput" placeholder="Name" value="{{.Name}}">
  <input type="tel" id="phoneInput" name="phoneInput" placeholder="Phone (+15551234567)" value="{{.Phone}}">
  <input type="password" id="checkPassword" name="checkPassword" placeholder="Password">
  <button type="submit">Check</button>
</form>
<p id="checkResult"{{with .Result.Color}} style="color: {{.}}"{{end}}>{{.Result.Text}}</p>
</body>
</html>
`))

func renderPage(w http.ResponseWriter, code int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := pageTemplate.Execute(w, data); err != nil {
		logging.ErrorLog("Page rendering failed: %v", err)
	}
}

// FormPageHandler serves the empty form.
func FormPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, pageData{})
	}
}
