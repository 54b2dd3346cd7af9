package errors

import "net/http"

var (
	ErrParkNotFound = New(
		"PARK_NOT_FOUND",
		"Park not found",
		http.StatusNotFound,
	)

	ErrBuildingNotFound = New(
		"BUILDING_NOT_FOUND",
		"Building not found in park",
		http.StatusNotFound,
	)

	ErrSurveyNotFound = New(
		"SURVEY_NOT_FOUND",
		"Survey record not found",
		http.StatusNotFound,
	)

	ErrInvalidDateRange = New(
		"INVALID_DATE_RANGE",
		"Invalid date range selector",
		http.StatusBadRequest,
	)

	ErrInvalidMetric = New(
		"INVALID_METRIC",
		"Invalid chart metric",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidImport = New(
		"INVALID_IMPORT",
		"Import payload failed shape validation",
		http.StatusBadRequest,
	)

	ErrAnalysisInProgress = New(
		"ANALYSIS_IN_PROGRESS",
		"A narrative analysis request is already in progress",
		http.StatusConflict,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"Storage operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
