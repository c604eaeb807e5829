package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/octobranch/pkg/domain/interfaces"
	"github.com/m-mizutani/octobranch/pkg/domain/model"
	"github.com/m-mizutani/octobranch/pkg/utils/errutil"
	"github.com/m-mizutani/octobranch/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response is plain text or JSON, not HTML
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/accounts/{account}/branches", func(w http.ResponseWriter, r *http.Request) {
		handleReportBranches(uc, w, r)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func handleReportBranches(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// chi matches on RawPath when the request path has escaped characters
	account := chi.URLParam(r, "account")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(account)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			raw, _ := json.Marshal(model.InvalidUsername(account))
			safeWrite(w, http.StatusBadRequest, raw)
			return
		}
		account = unescaped
	}

	var buf bytes.Buffer
	result, err := uc.ReportBranches(ctx, &buf, &model.ReportBranchesInput{Account: account})
	if err != nil {
		errutil.HandleError(ctx, "fail to report branches", err)
		safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
		return
	}

	if result == model.RunFailed {
		// Output of failed run is one ErrorReport
		status := http.StatusBadGateway
		var report model.ErrorReport
		if err := json.Unmarshal(buf.Bytes(), &report); err == nil && report.Status >= 400 && report.Status < 600 {
			status = report.Status
		}
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, status, buf.Bytes())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	safeWrite(w, http.StatusOK, buf.Bytes())
}
