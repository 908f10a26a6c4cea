package scorm

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/edupack/scorm-server/internal/models"
)

// Namespaces used by SCORM 1.2 manifests. Lookups are namespace-qualified
// throughout; elements outside these namespaces are ignored.
const (
	ImscpNS = "http://www.imsproject.org/xsd/imscp_rootv1p1p2"
	AdlcpNS = "http://www.adlnet.org/xsd/adlcp_rootv1p2"
)

// ManifestFileName must sit directly inside the extracted package directory.
const ManifestFileName = "imsmanifest.xml"

// DefaultCourseTitle is used when the organizations/organization/title chain
// is incomplete. A missing title is common in valid packages and is not an
// error, unlike a missing or malformed manifest file.
const DefaultCourseTitle = "Untitled Course"

// ManifestError is a reportable parse failure. It is carried into the upload
// response rather than failing the request: extraction success is independent
// of manifest success.
type ManifestError struct {
	Kind   string // "not_found" or "parse"
	Detail string
}

func (e *ManifestError) Error() string {
	return e.Detail
}

type organizationsXML struct {
	Organizations []organizationXML `xml:"http://www.imsproject.org/xsd/imscp_rootv1p1p2 organization"`
}

type organizationXML struct {
	Titles []string `xml:"http://www.imsproject.org/xsd/imscp_rootv1p1p2 title"`
}

type resourcesXML struct {
	Resources []resourceXML `xml:"http://www.imsproject.org/xsd/imscp_rootv1p1p2 resource"`
}

type resourceXML struct {
	Identifier string `xml:"identifier,attr"`
	Href       string `xml:"href,attr"`
	ScormType  string `xml:"http://www.adlnet.org/xsd/adlcp_rootv1p2 scormtype,attr"`
}

// ParseManifest reads imsmanifest.xml from dir and extracts the course title
// and the launchable resources. Errors are always *ManifestError.
func ParseManifest(dir string) (*models.CourseManifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, &ManifestError{
			Kind:   "not_found",
			Detail: "Manifest file (imsmanifest.xml) not found in the package",
		}
	}

	orgs, ress, err := findSections(data)
	if err != nil {
		return nil, &ManifestError{
			Kind:   "parse",
			Detail: fmt.Sprintf("Failed to parse manifest XML: %v", err),
		}
	}

	m := &models.CourseManifest{
		CourseTitle: DefaultCourseTitle,
		Scos:        []models.Sco{},
	}

	// First organizations, first organization, first title. Any missing link
	// in that chain, or an empty title element, leaves the default in place.
	if orgs != nil && len(orgs.Organizations) > 0 {
		if titles := orgs.Organizations[0].Titles; len(titles) > 0 && titles[0] != "" {
			m.CourseTitle = titles[0]
		}
	}

	// Resources missing identifier or href are skipped, not reported.
	if ress != nil {
		for _, res := range ress.Resources {
			if res.Identifier == "" || res.Href == "" {
				continue
			}
			m.Scos = append(m.Scos, models.Sco{
				Identifier: res.Identifier,
				Href:       res.Href,
				ScormType:  res.ScormType,
			})
		}
	}

	return m, nil
}

// findSections walks the whole document and decodes the first organizations
// and first resources elements in document order, at any depth. The walk
// continues to EOF so malformed XML after the sections still fails the parse.
func findSections(data []byte) (*organizationsXML, *resourcesXML, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var orgs *organizationsXML
	var ress *resourcesXML
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return orgs, ress, nil
		}
		if err != nil {
			return nil, nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Space != ImscpNS {
			continue
		}
		switch {
		case se.Name.Local == "organizations" && orgs == nil:
			var o organizationsXML
			if err := dec.DecodeElement(&o, &se); err != nil {
				return nil, nil, err
			}
			orgs = &o
		case se.Name.Local == "resources" && ress == nil:
			var rs resourcesXML
			if err := dec.DecodeElement(&rs, &se); err != nil {
				return nil, nil, err
			}
			ress = &rs
		}
	}
}
