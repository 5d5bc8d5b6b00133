package webui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"preplan.flightworks.org/internal/appconf"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		// Log the actual error server-side
		slog.Error("failed to parse debug template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		slog.Error("failed to execute debug template", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	if webUI.Config.Env == appconf.Production {
		http.NotFound(w, r)
		return
	}
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	webUI.MasterData.RLock()
	defer webUI.MasterData.RUnlock()

	switch dataType {
	case "airports":
		data = webUI.MasterData.Airports()
		title = "Master Data - Airports"
	case "requirements":
		data = webUI.MasterData.Requirements()
		title = "Master Data - Flight Requirements"
	case "tables":
		counts, err := webUI.MasterData.PlanDB.TableCounts()
		if err != nil {
			data = map[string]string{"error": err.Error()}
		} else {
			data = counts
		}
		title = "Master Data - Table Counts"
	default:
		data = map[string]string{
			"error": "Please use one of the following: airports, requirements, tables.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
