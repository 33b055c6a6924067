package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"doctor-finder/internal/converter"
	"doctor-finder/internal/delivery/dto"
	"doctor-finder/internal/domain/entity"
	"doctor-finder/internal/usecase"
	"doctor-finder/pkg/validator"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("directory.html").Funcs(template.FuncMap{
	"initial": func(name string) string {
		r, _ := utf8.DecodeRuneInString(name)
		if r == utf8.RuneError {
			return ""
		}
		return string(r)
	},
}).ParseFS(templateFS, "templates/directory.html"))

type pageSuggestion struct {
	dto.SuggestionResponse
	Href string
}

type pageSpecialty struct {
	ID      string
	Display string
	Checked bool
}

type pageData struct {
	Search      string
	Mode        string
	Sort        string
	Suggestions []pageSuggestion
	Specialties []pageSpecialty
	Doctors     []dto.DoctorResponse
}

// Page-only parameters. They drive a single page event and never appear in
// the canonical query, except suggestParam which keeps the dropdown open.
const (
	actionParam  = "action"
	actionSearch = "search"
	selectParam  = "select"
	suggestParam = "suggest"
)

// PageHandler renders the directory page. The URL query string is the whole
// page state: forms submit via GET and every request that is not already in
// canonical form is redirected to it.
type PageHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
	log              *logrus.Logger
}

func NewPageHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PageHandler {
	return &PageHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
		log:              log,
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	query, fieldErrors, err := decodeDoctorQuery(r, h.validator)
	if err != nil {
		http.Error(w, "Invalid query parameters", http.StatusBadRequest)
		return
	}
	if fieldErrors != nil {
		writeFieldErrors(w, fieldErrors)
		return
	}

	state, err := h.directoryUsecase.LoadState(r.Context(), query)
	if err != nil {
		h.log.Errorf("Failed to load directory page: %+v", err)
		http.Error(w, "Failed to load doctors", http.StatusInternalServerError)
		return
	}

	values := r.URL.Query()
	switch {
	case strings.TrimSpace(values.Get(selectParam)) != "":
		state.SelectSuggestion(values.Get(selectParam))
	case values.Get(actionParam) == actionSearch || values.Has(suggestParam):
		state.SetQuery(query.Search)
	}

	target := pageQuery(state)
	if r.URL.RawQuery != target {
		location := "/"
		if target != "" {
			location += "?" + target
		}
		http.Redirect(w, r, location, http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, buildPageData(state)); err != nil {
		h.log.Errorf("Failed to render directory page: %+v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// pageQuery is the canonical query plus the dropdown marker while
// suggestions are showing.
func pageQuery(state *usecase.DirectoryState) string {
	encoded := state.EncodedQuery()
	if len(state.Suggestions()) == 0 {
		return encoded
	}
	if encoded == "" {
		return suggestParam + "=1"
	}
	return encoded + "&" + suggestParam + "=1"
}

func writeFieldErrors(w http.ResponseWriter, fieldErrors map[string]string) {
	messages := make([]string, 0, len(fieldErrors))
	for _, msg := range fieldErrors {
		messages = append(messages, msg)
	}
	sort.Strings(messages)
	http.Error(w, strings.Join(messages, "\n"), http.StatusBadRequest)
}

func buildPageData(state *usecase.DirectoryState) pageData {
	filter := state.Filter()

	data := pageData{
		Search:  state.Query(),
		Mode:    string(filter.Mode),
		Sort:    string(filter.Sort),
		Doctors: converter.DoctorsToResponses(state.View()),
	}

	for _, s := range converter.DoctorsToSuggestions(state.Suggestions()) {
		params := state.Params()
		params.Set(selectParam, s.Name)
		data.Suggestions = append(data.Suggestions, pageSuggestion{
			SuggestionResponse: s,
			Href:               "/?" + params.Encode(),
		})
	}

	for _, s := range entity.SpecialtyCatalog {
		data.Specialties = append(data.Specialties, pageSpecialty{
			ID:      s.ID,
			Display: s.Display,
			Checked: filter.Specialties.Has(s.Display),
		})
	}

	return data
}
