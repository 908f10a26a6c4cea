package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func packageZip(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

const manifestXML = `<?xml version="1.0"?>
<manifest xmlns="http://www.imsproject.org/xsd/imscp_rootv1p1p2">
  <organizations>
    <organization><title>Test Course</title></organization>
  </organizations>
  <resources>
    <resource identifier="RES-1" href="index.html"/>
  </resources>
</manifest>`

func TestProcessUpload(t *testing.T) {
	dir := t.TempDir()
	svc := NewScormService(dir)

	body := packageZip(t, map[string]string{
		"imsmanifest.xml": manifestXML,
		"index.html":      "<html/>",
	})
	report, err := svc.ProcessUpload("course.zip", body)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if report.ManifestParsingStatus != "success" {
		t.Fatalf("status = %q, details = %q", report.ManifestParsingStatus, report.ManifestErrorDetails)
	}
	if report.ManifestData == nil || report.ManifestData.CourseTitle != "Test Course" {
		t.Fatalf("manifest data = %+v", report.ManifestData)
	}
	if !strings.HasPrefix(filepath.Base(report.ExtractedContentPath), "course_") {
		t.Fatalf("extract dir = %q, want course_<uuid>", report.ExtractedContentPath)
	}
	// The temporary archive must be gone; only the extract dir remains.
	if _, err := os.Stat(filepath.Join(dir, "course.zip")); !os.IsNotExist(err) {
		t.Fatal("temporary archive not removed after extraction")
	}
}

func TestProcessUploadMissingManifest(t *testing.T) {
	svc := NewScormService(t.TempDir())

	body := packageZip(t, map[string]string{"index.html": "<html/>"})
	report, err := svc.ProcessUpload("course.zip", body)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if report.ManifestParsingStatus != "error" {
		t.Fatalf("status = %q, want error", report.ManifestParsingStatus)
	}
	if report.ManifestData != nil {
		t.Fatal("manifest data present alongside manifest error")
	}
	if report.ManifestErrorDetails == "" {
		t.Fatal("manifest error has no details")
	}
}

func TestProcessUploadRejectsNonZip(t *testing.T) {
	svc := NewScormService(t.TempDir())
	_, err := svc.ProcessUpload("course.pdf", strings.NewReader("%PDF-1.4"))
	if !errors.Is(err, ErrNotZip) {
		t.Fatalf("err = %v, want ErrNotZip", err)
	}
}

func TestProcessUploadZipExtensionCaseInsensitive(t *testing.T) {
	svc := NewScormService(t.TempDir())
	body := packageZip(t, map[string]string{"imsmanifest.xml": manifestXML})
	if _, err := svc.ProcessUpload("COURSE.ZIP", body); err != nil {
		t.Fatalf("uppercase extension rejected: %v", err)
	}
}

func TestProcessUploadEmptyFilename(t *testing.T) {
	svc := NewScormService(t.TempDir())
	_, err := svc.ProcessUpload("", strings.NewReader(""))
	if !errors.Is(err, ErrNoFilename) {
		t.Fatalf("err = %v, want ErrNoFilename", err)
	}
}

func TestProcessUploadCorruptArchiveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewScormService(dir)

	_, err := svc.ProcessUpload("broken.zip", strings.NewReader("not a zip at all"))
	if !errors.Is(err, ErrBadArchive) {
		t.Fatalf("err = %v, want ErrBadArchive", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.zip")); !os.IsNotExist(err) {
		t.Fatal("corrupt archive left on disk")
	}
}
