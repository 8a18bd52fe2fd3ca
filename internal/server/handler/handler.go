package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Jarnpher553/gostore/component/storage"
	"github.com/Jarnpher553/gostore/internal/server/event"
	"github.com/Jarnpher553/gostore/internal/server/types"
	"github.com/Jarnpher553/gostore/internal/util/color"
)

type HandlerFunc func(s *types.ServiceCtx, method string) func(w http.ResponseWriter, r *http.Request)

func readBody(w http.ResponseWriter, r *http.Request, out interface{}) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(http.StatusText(http.StatusBadRequest)))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(respBytes)
}

// GetEntryHandler read one raw entry
func GetEntryHandler(s *types.ServiceCtx, method string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte(http.StatusText(http.StatusMethodNotAllowed)))
			return
		}

		var req types.GetEntryReq
		if !readBody(w, r, &req) {
			return
		}

		v, found, err := s.Storage.Get(req.Key, storage.Options{Prefix: req.Prefix})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
			return
		}

		writeJSON(w, &types.GetEntryResp{Value: v, Found: found})
	}
}

// AllEntriesHandler list every entry under the prefix, values parsed as JSON
func AllEntriesHandler(s *types.ServiceCtx, method string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte(http.StatusText(http.StatusMethodNotAllowed)))
			return
		}

		var req types.AllEntriesReq
		if !readBody(w, r, &req) {
			return
		}

		entries, err := s.Storage.GetAll(storage.Options{Prefix: req.Prefix})
		if err != nil {
			status := http.StatusInternalServerError
			if _, ok := err.(*storage.ParseError); ok {
				status = http.StatusUnprocessableEntity
			}
			w.WriteHeader(status)
			w.Write([]byte(err.Error()))
			return
		}

		writeJSON(w, &types.AllEntriesResp{Entries: entries})
	}
}

// PutEntryHandler write one raw entry
func PutEntryHandler(s *types.ServiceCtx, method string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte(http.StatusText(http.StatusMethodNotAllowed)))
			return
		}

		var req types.PutEntryReq
		if !readBody(w, r, &req) {
			return
		}

		if err := s.Storage.Put(req.Key, req.Value, storage.Options{Prefix: req.Prefix}); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
			return
		}

		physical := s.CalcPrefix(req.Prefix) + req.Key
		s.Logger.Info("Entry key:[%s] put", color.Green(physical))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(http.StatusText(http.StatusOK)))

		s.Trigger.Emit(&event.Event{Type: event.PutEntry, Key: physical, Value: req.Value})
	}
}

// RemoveEntryHandler delete one entry, absent key is a no-op
func RemoveEntryHandler(s *types.ServiceCtx, method string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte(http.StatusText(http.StatusMethodNotAllowed)))
			return
		}

		var req types.RemoveEntryReq
		if !readBody(w, r, &req) {
			return
		}

		if err := s.Storage.Remove(req.Key, storage.Options{Prefix: req.Prefix}); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
			return
		}

		physical := s.CalcPrefix(req.Prefix) + req.Key
		s.Logger.Info("Entry key:[%s] removed", color.Green(physical))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(http.StatusText(http.StatusOK)))

		s.Trigger.Emit(&event.Event{Type: event.RemoveEntry, Key: physical, Value: types.RemovedMarker})
	}
}

func HealthHandler(s *types.ServiceCtx, method string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			w.Write([]byte(http.StatusText(http.StatusMethodNotAllowed)))
			return
		}

		ids := r.URL.Query()["id"]
		if len(ids) != 0 && ids[0] != s.Meta.ID.String() {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(s.Meta.ID.String()))
	}
}
