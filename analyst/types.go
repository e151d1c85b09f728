/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package analyst

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/santosh898/git-ranker/agents/promptbuilder"
)

// Request names the repository to review.
type Request struct {
	XMLName xml.Name `xml:"request"`
	URL     string   `xml:"url"`
	Owner   string   `xml:"owner"`
	Repo    string   `xml:"repo"`
}

// Bind implements promptbuilder.Bindable. The request is bound as XML since
// the URL comes from the user.
func (r *Request) Bind(prompt *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return prompt.BindXML("request", r)
}

// Category is the kind of problem a Concern describes.
type Category string

const (
	CategoryDependency     Category = "dependency"
	CategoryOrganization   Category = "organization"
	CategoryPackageManager Category = "package_manager"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDependency, CategoryOrganization, CategoryPackageManager:
		return true
	}
	return false
}

// Concern is one specific complaint about a package.
type Concern struct {
	Category  Category `json:"category" yaml:"category" jsonschema:"required,enum=dependency,enum=organization,enum=package_manager,description=What the complaint is about"`
	Complaint string   `json:"complaint" yaml:"complaint" jsonschema:"required,description=The specific problem"`
	Proof     string   `json:"proof" yaml:"proof" jsonschema:"required,description=Evidence from the repository such as a file path and the offending line"`
}

// PackageReview rates one package found in the repository.
type PackageReview struct {
	Name     string    `json:"name" yaml:"name" jsonschema:"required,description=Package name as declared in its manifest"`
	Path     string    `json:"path" yaml:"path" jsonschema:"required,description=Directory of the package relative to the repository root"`
	Manager  string    `json:"manager" yaml:"manager" jsonschema:"required,description=Package manager in use such as npm or go modules or poetry"`
	Rating   int       `json:"rating" yaml:"rating" jsonschema:"required,minimum=1,maximum=10,description=Overall rating from 1 (worst) to 10 (best)"`
	Concerns []Concern `json:"concerns" yaml:"concerns" jsonschema:"description=Every complaint with its proof. Empty when there is nothing to complain about"`
}

// Review is the analyst's verdict on a repository.
type Review struct {
	_ struct{} `submitresult:"name=submit_review,payload=review,description=Submit the finished review once every package in the repository has been rated.,payloadDescription=The per package ratings and concerns,success=Review recorded."`

	// Repository is filled in by the analyst after the agent returns.
	Repository string          `json:"repository,omitempty" yaml:"repository,omitempty" jsonschema:"-"`
	Summary    string          `json:"summary" yaml:"summary" jsonschema:"required,description=What the repository is about and how well it is organized"`
	Packages   []PackageReview `json:"packages" yaml:"packages" jsonschema:"required,description=One entry for every package in the repository"`
}

// Validate checks the review the model submitted. Its errors are sent back
// to the model, so they say what to fix.
func (r *Review) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Summary) == "" {
		errs = append(errs, errors.New("summary is empty"))
	}
	if len(r.Packages) == 0 {
		errs = append(errs, errors.New("no packages reviewed"))
	}
	for i, p := range r.Packages {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			errs = append(errs, fmt.Errorf("package %s has no name", name))
		}
		if p.Rating < 1 || p.Rating > 10 {
			errs = append(errs, fmt.Errorf("package %s: rating %d is outside 1 to 10", name, p.Rating))
		}
		for j, c := range p.Concerns {
			if !c.Category.Valid() {
				errs = append(errs, fmt.Errorf("package %s concern %d: unknown category %q", name, j+1, c.Category))
			}
			if strings.TrimSpace(c.Complaint) == "" {
				errs = append(errs, fmt.Errorf("package %s concern %d: complaint is empty", name, j+1))
			}
			if strings.TrimSpace(c.Proof) == "" {
				errs = append(errs, fmt.Errorf("package %s concern %d: proof is empty", name, j+1))
			}
		}
	}
	return errors.Join(errs...)
}
