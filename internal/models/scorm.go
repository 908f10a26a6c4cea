package models

// Sco describes one launchable content unit from a package manifest.
// ScormType carries the adlcp:scormtype attribute when the manifest sets it.
type Sco struct {
	Identifier string `json:"identifier"`
	Href       string `json:"href"`
	ScormType  string `json:"scorm_type,omitempty"`
}

type CourseManifest struct {
	CourseTitle string `json:"course_title"`
	Scos        []Sco  `json:"scos"`
}

// UploadReport is the /api/upload-scorm response body. Extraction success and
// manifest success are independent: a valid archive with a bad manifest still
// produces a report, with the manifest error embedded.
type UploadReport struct {
	Message               string          `json:"message"`
	ExtractedContentPath  string          `json:"extracted_content_path"`
	ManifestParsingStatus string          `json:"manifest_parsing_status"`
	ManifestData          *CourseManifest `json:"manifest_data,omitempty"`
	ManifestErrorDetails  string          `json:"manifest_error_details,omitempty"`
}
