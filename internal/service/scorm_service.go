package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/edupack/scorm-server/internal/models"
	"github.com/edupack/scorm-server/internal/scorm"
)

var (
	// ErrNoFilename is returned when the upload carries an empty file name.
	ErrNoFilename = errors.New("No selected file")
	// ErrNotZip is returned for any extension other than .zip.
	ErrNotZip = errors.New("Invalid file type, please upload a .zip file")
	// ErrBadArchive is returned when the bytes are not a valid zip archive.
	ErrBadArchive = errors.New("Invalid or corrupted zip file")
)

type ScormService struct {
	uploadDir string
}

func NewScormService(uploadDir string) *ScormService {
	return &ScormService{uploadDir: uploadDir}
}

// ProcessUpload validates and extracts one uploaded package, then parses its
// manifest. A manifest failure does not fail the upload: the report carries
// either manifest data or the manifest error, and the caller still gets the
// extraction path. Extracted directories are kept on disk indefinitely.
func (s *ScormService) ProcessUpload(fileName string, file io.Reader) (*models.UploadReport, error) {
	if fileName == "" {
		return nil, ErrNoFilename
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".zip") {
		return nil, ErrNotZip
	}

	name := scorm.SanitizeFilename(fileName)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = "package"
		name = base + ".zip"
	}

	extractDir := filepath.Join(s.uploadDir, fmt.Sprintf("%s_%s", base, uuid.New().String()))
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return nil, fmt.Errorf("create extract dir: %w", err)
	}

	zipPath := filepath.Join(s.uploadDir, name)
	if err := saveFile(zipPath, file); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	if err := scorm.ExtractZip(zipPath, extractDir); err != nil {
		os.Remove(zipPath)
		return nil, ErrBadArchive
	}
	os.Remove(zipPath)

	report := &models.UploadReport{
		Message:              "File uploaded and extracted successfully",
		ExtractedContentPath: extractDir,
	}

	manifest, err := scorm.ParseManifest(extractDir)
	if err != nil {
		report.ManifestParsingStatus = "error"
		report.ManifestErrorDetails = err.Error()
	} else {
		report.ManifestParsingStatus = "success"
		report.ManifestData = manifest
	}
	return report, nil
}

func saveFile(path string, src io.Reader) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}
