package main

import (
	"fmt"
	"html/template"
	"log"
	"path/filepath"

	"omahaestates/internal/config"
	"omahaestates/internal/db"
	"omahaestates/internal/middleware"
	"omahaestates/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// Initialize Database
	db.Init(cfg.DatabaseURL)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("omahaestates_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static and media assets
	r.Static("/static", "./web/static")
	r.Static(cfg.MediaURL, cfg.MediaRoot)

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r, cfg)

	log.Printf("Omaha Estates server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, templatesDir+"/views/"+view)
		return files
	}

	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"formatPrice": func(price int) string {
			s := fmt.Sprintf("%d", price)
			var out []byte
			for i, d := range []byte(s) {
				if i > 0 && (len(s)-i)%3 == 0 {
					out = append(out, ',')
				}
				out = append(out, d)
			}
			return "$" + string(out)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
	}

	views := []string{
		"site/home.html",
		"site/about.html",
		"site/contact.html",
		"site/omaha_info.html",
		"site/omaha_info_detail.html",
		"listings/list.html",
		"listings/detail.html",
		"accounts/login.html",
		"accounts/dashboard.html",
		"admin/listing_list.html",
		"admin/listing_form.html",
		"admin/neighborhood_list.html",
		"admin/home_type_list.html",
		"admin/price_range_list.html",
		"admin/info_list.html",
		"admin/info_form.html",
		"admin/search_log_list.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(view)...)
	}

	return r
}
