package handler

import (
	"html/template"

	"github.com/kdossou/focusedu/internal/catalog"
	"github.com/kdossou/focusedu/internal/model"
)

// option is a form value with its display label.
type option struct {
	Value string
	Label string
}

// Closed context sets offered by the submission forms. The core never
// validates against these; they exist only so the forms offer a fixed
// vocabulary for aggregation.
var (
	ageOptions   = []string{"10", "11", "12", "13", "14", "15", "16", "17", "18"}
	sexOptions   = []option{{"M", "Masculin"}, {"F", "Féminin"}, {"other", "Autre"}}
	classOptions = []string{"6ème", "5ème", "4ème", "3ème"}

	subjectOptions = []string{
		"Mathématiques", "Français", "Sciences", "Histoire-Géographie", "Anglais", "EPS",
	}
	experienceOptions = []string{"Moins de 5 ans", "5 à 15 ans", "Plus de 15 ans"}

	momentOptions = []option{{"morning", "Matin"}, {"afternoon", "Après-midi"}}
)

type indexData struct {
	SessionCount int
}

type loginData struct {
	Error string
}

type formData struct {
	Role      model.Role
	IsStudent bool
	Questions []catalog.Question
	Ages      []string
	Sexes     []option
	Classes   []string
	Subjects  []string
	Tenure    []string
	Moments   []option
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>FocusEdu</title></head>
<body>
<h1>FocusEdu — Concentration en classe</h1>
<p>{{.SessionCount}} session(s) enregistrée(s).</p>
<ul>
  <li><a href="/questionnaire/student">Questionnaire élèves</a></li>
  <li><a href="/questionnaire/teacher">Questionnaire enseignants</a></li>
  <li><a href="/results">Résultats (accès restreint)</a></li>
</ul>
</body>
</html>
`))

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>FocusEdu — Connexion</title></head>
<body>
<h1>Accès aux résultats</h1>
{{if .Error}}<p style="color:#e74c3c">{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <label>Mot de passe <input type="password" name="password" required></label>
  <button type="submit">Se connecter</button>
</form>
</body>
</html>
`))

var formTmpl = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>FocusEdu — Questionnaire</title></head>
<body>
{{if .IsStudent}}<h1>Questionnaire élèves</h1>{{else}}<h1>Questionnaire enseignants</h1>{{end}}
<form method="post" action="/submit/{{.Role}}">
  <fieldset>
    <legend>Identité</legend>
    <label>Nom <input name="last_name" required></label>
    <label>Prénom <input name="first_name" required></label>
  </fieldset>
  <fieldset>
    <legend>Contexte</legend>
    {{if .IsStudent}}
    <label>Âge <select name="age">{{range .Ages}}<option>{{.}}</option>{{end}}</select></label>
    <label>Sexe <select name="sex">{{range .Sexes}}<option value="{{.Value}}">{{.Label}}</option>{{end}}</select></label>
    <label>Classe <select name="class">{{range .Classes}}<option>{{.}}</option>{{end}}</select></label>
    {{else}}
    <label>Matière <select name="subject">{{range .Subjects}}<option>{{.}}</option>{{end}}</select></label>
    <label>Expérience <select name="experience">{{range .Tenure}}<option>{{.}}</option>{{end}}</select></label>
    {{end}}
    <label>Moment de la journée <select name="time_of_day">{{range .Moments}}<option value="{{.Value}}">{{.Label}}</option>{{end}}</select></label>
  </fieldset>
  {{range .Questions}}
  <fieldset>
    <legend>{{.Text}}</legend>
    {{if eq .Type "single"}}
      {{$id := .ID}}
      {{range .Options}}<label><input type="radio" name="{{$id}}" value="{{.}}"> {{.}}</label>{{end}}
    {{else if eq .Type "multi"}}
      {{$id := .ID}}
      {{range .Options}}<label><input type="checkbox" name="{{$id}}" value="{{.}}"> {{.}}</label>{{end}}
    {{else}}
      <textarea name="{{.ID}}" rows="3" cols="60"></textarea>
    {{end}}
    {{if .HasOther}}<label>Autre : <input name="{{.ID}}_other"></label>{{end}}
  </fieldset>
  {{end}}
  <button type="submit">Envoyer</button>
</form>
</body>
</html>
`))
