package testabilities

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"sync"

	"github.com/bsv-blockchain/go-http-assertions/pkg/constants"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
	"github.com/julienschmidt/httprouter"
	"github.com/klauspost/compress/gzip"
)

// Routes of the sample comments API.
const (
	PathComments        = "/api/comments"
	PathComment         = "/api/comments/:id"
	PathCommentsArchive = "/api/archive/comments"
	PathAvatar          = "/api/avatar"
	PathAttachments     = "/api/attachments"
	PathActivityLog     = "/api/activity-log"
)

const (
	MediaTypeProblemJSON = "application/problem+json"

	// ActivityLogLength is larger than the rendered content limit.
	ActivityLogLength = 200 * 1024
	ActivityLogLine   = "comment created by anonymous\n"
)

type Comment struct {
	ID      int    `json:"id,omitempty"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

type ValidationProblem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// SeededComments are served by the sample API before any comment is created.
var SeededComments = []Comment{
	{ID: 1, Author: "Alice", Content: "First!"},
	{ID: 2, Author: "Bob", Content: "Welcome to the thread."},
}

type sampleAPI struct {
	logger *slog.Logger

	mu       sync.Mutex
	comments []Comment
	nextID   int
}

func newSampleAPI(logger *slog.Logger) *sampleAPI {
	comments := make([]Comment, len(SeededComments))
	copy(comments, SeededComments)

	return &sampleAPI{
		logger:   logging.Child(logger, "SampleAPI"),
		comments: comments,
		nextID:   len(comments) + 1,
	}
}

func (api *sampleAPI) register(router *httprouter.Router) {
	router.GET(PathComments, api.listComments)
	router.POST(PathComments, api.createComment)
	router.GET(PathComment, api.getComment)
	router.DELETE(PathComment, api.deleteComment)
	router.GET(PathCommentsArchive, api.archive)
	router.GET(PathAvatar, api.avatar)
	router.GET(PathAttachments, api.attachments)
	router.GET(PathActivityLog, api.activityLog)
}

func (api *sampleAPI) listComments(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	api.mu.Lock()
	defer api.mu.Unlock()

	api.writeJSON(w, http.StatusOK, api.comments)
}

func (api *sampleAPI) createComment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var comment Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		api.logger.Debug("Invalid comment payload", logging.Error(err))
		api.writeProblem(w, map[string][]string{
			"$": {"The request body is not a valid JSON document."},
		})
		return
	}

	problems := make(map[string][]string)
	if strings.TrimSpace(comment.Author) == "" {
		problems["Author"] = []string{"The Author field is required."}
	}
	if strings.TrimSpace(comment.Content) == "" {
		problems["Content"] = []string{"The Content field is required."}
	}
	if len(problems) > 0 {
		api.writeProblem(w, problems)
		return
	}

	api.mu.Lock()
	comment.ID = api.nextID
	api.nextID++
	api.comments = append(api.comments, comment)
	api.mu.Unlock()

	w.Header().Set("Location", fmt.Sprintf("%s/%d", PathComments, comment.ID))
	api.writeJSON(w, http.StatusCreated, comment)
}

func (api *sampleAPI) getComment(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	index, ok := api.find(params.ByName("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	api.writeJSON(w, http.StatusOK, api.comments[index])
}

func (api *sampleAPI) deleteComment(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	index, ok := api.find(params.ByName("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	api.mu.Lock()
	api.comments = append(api.comments[:index], api.comments[index+1:]...)
	api.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// archive serves the comments compressed with gzip regardless of Accept-Encoding.
func (api *sampleAPI) archive(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	api.mu.Lock()
	payload, err := json.Marshal(api.comments)
	api.mu.Unlock()
	if err != nil {
		api.fail(w, err)
		return
	}

	w.Header().Set(constants.HeaderContentType, constants.MediaTypeJSON)
	w.Header().Set(constants.HeaderContentEncoding, "gzip")
	w.WriteHeader(http.StatusOK)

	zw := gzip.NewWriter(w)
	if _, err := zw.Write(payload); err != nil {
		api.logger.Error("Failed to write compressed comments", logging.Error(err))
	}
	if err := zw.Close(); err != nil {
		api.logger.Error("Failed to finish compressed comments", logging.Error(err))
	}
}

func (api *sampleAPI) avatar(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set(constants.HeaderContentType, "image/jpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte{0})
}

func (api *sampleAPI) attachments(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	mw := multipart.NewWriter(w)
	w.Header().Set(constants.HeaderContentType, "multipart/mixed; boundary="+mw.Boundary())
	w.WriteHeader(http.StatusOK)

	parts := []struct{ name, value string }{
		{"author", "Alice"},
		{"content", "See the attached notes."},
	}
	for _, p := range parts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, p.name))
		header.Set(constants.HeaderContentType, "text/plain")

		part, err := mw.CreatePart(header)
		if err != nil {
			api.logger.Error("Failed to create attachment part", logging.Error(err))
			return
		}
		_, _ = part.Write([]byte(p.value))
	}
	_ = mw.Close()
}

func (api *sampleAPI) activityLog(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set(constants.HeaderContentType, "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ActivityLog()))
}

// ActivityLog returns the body served by the activity log route.
func ActivityLog() string {
	var sb strings.Builder
	for sb.Len() < ActivityLogLength {
		sb.WriteString(ActivityLogLine)
	}
	return sb.String()[:ActivityLogLength]
}

func (api *sampleAPI) find(rawID string) (int, bool) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return 0, false
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	for i, comment := range api.comments {
		if comment.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (api *sampleAPI) writeProblem(w http.ResponseWriter, problems map[string][]string) {
	problem := ValidationProblem{
		Type:   "https://tools.ietf.org/html/rfc9110#section-15.5.1",
		Title:  "One or more validation errors occurred.",
		Status: http.StatusBadRequest,
		Errors: problems,
	}

	payload, err := json.Marshal(problem)
	if err != nil {
		api.fail(w, err)
		return
	}

	w.Header().Set(constants.HeaderContentType, MediaTypeProblemJSON)
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(payload)
}

func (api *sampleAPI) writeJSON(w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		api.fail(w, err)
		return
	}

	w.Header().Set(constants.HeaderContentType, constants.MediaTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func (api *sampleAPI) fail(w http.ResponseWriter, err error) {
	api.logger.Error("Sample API failed", logging.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
