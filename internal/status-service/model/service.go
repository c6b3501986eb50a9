package model

import "strings"

const (
	ServiceTypeWeb      = "web"
	ServiceTypeAPI      = "api"
	ServiceTypeInternal = "internal"
)

const (
	CategoryCore = "core"
	CategoryAI   = "ai"
	CategoryDev  = "dev"
)

// CategoryOrder is the order in which categories are presented on the dashboard.
var CategoryOrder = []string{CategoryCore, CategoryAI, CategoryDev}

type ServiceDescriptor struct {
	Name          string `yaml:"name" validate:"required"`
	URL           string `yaml:"url" validate:"required,url"`
	HealthPath    string `yaml:"health_path"`
	Type          string `yaml:"type" validate:"required,oneof=web api internal"`
	Category      string `yaml:"category" validate:"required,oneof=core ai dev"`
	Description   string `yaml:"description"`
	DescriptionEn string `yaml:"description_en"`
}

// HealthURL joins the base URL and the health path. An empty health path probes the base URL itself.
func (s ServiceDescriptor) HealthURL() string {
	if s.HealthPath == "" {
		return s.URL
	}
	path := s.HealthPath
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(s.URL, "/") + path
}
