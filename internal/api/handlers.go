package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/sprawl/pkg/errors"
	"github.com/matzehuels/sprawl/pkg/pipeline"
	"github.com/matzehuels/sprawl/pkg/render"
)

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleGraph generates a graph from query parameters and returns it in the
// requested format. Format json returns the graph structure; png and svg
// return a rendered image.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(result.Format))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifact)
}

// optionsFromQuery parses pipeline options from the request query string.
// Absent parameters keep the pipeline defaults; present ones are taken as
// given, including zeros, so invalid values surface as errors downstream.
func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	q := r.URL.Query()

	if v := q.Get("num_records"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "num_records must be an integer, got %q", v)
		}
		opts.NumRecords = n
	}
	if v := q.Get("multi_connection_ratio"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "multi_connection_ratio must be a number, got %q", v)
		}
		opts.MultiConnectionRatio = f
	}
	if v := q.Get("min_connections"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "min_connections must be an integer, got %q", v)
		}
		opts.MinConnections = n
	}
	if v := q.Get("max_connections"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "max_connections must be an integer, got %q", v)
		}
		opts.MaxConnections = n
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "seed must be an integer, got %q", v)
		}
		opts.Seed = &n
	}
	if v := q.Get("edge_thickness"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "edge_thickness must be a number, got %q", v)
		}
		opts.EdgeThickness = f
	}
	if v := q.Get("fig_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "fig_size must be an integer, got %q", v)
		}
		opts.FigSize = n
	}
	if v := q.Get("format"); v != "" {
		opts.Format = v
	}
	if err := pipeline.ValidateFormat(opts.Format); err != nil {
		return opts, err
	}

	return opts, nil
}

// contentTypeFor maps output formats to response content types.
func contentTypeFor(format string) string {
	switch format {
	case render.FormatPNG:
		return "image/png"
	case render.FormatSVG:
		return "image/svg+xml"
	default:
		return "application/json"
	}
}

// writeError maps error codes to HTTP statuses and writes a JSON error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeOutOfRange, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	var resp errorResponse
	resp.Error.Code = string(errors.GetCode(err))
	if resp.Error.Code == "" {
		resp.Error.Code = string(errors.ErrCodeInternal)
	}
	resp.Error.Message = errors.UserMessage(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
