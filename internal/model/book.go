package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Books struct {
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Items    []Book `json:"items,omitempty" yaml:"items,omitempty"`
}

// Find returns the book with the given id, or nil.
func (b *Books) Find(id string) *Book {
	if b == nil || id == "" {
		return nil
	}
	for i := range b.Items {
		if b.Items[i].ID == id {
			return &b.Items[i]
		}
	}
	return nil
}

type Book struct {
	ID                  string      `json:"id,omitempty" yaml:"id,omitempty"`
	Title               string      `json:"title" yaml:"title"`
	Edition             string      `json:"edition" yaml:"edition"`
	Class               string      `json:"class" yaml:"class"`
	CoverImage          string      `json:"coverImage" yaml:"coverImage"`
	BackImage           string      `json:"backImage,omitempty" yaml:"backImage,omitempty"`
	QuestionCount       int         `json:"questionCount,omitempty" yaml:"questionCount,omitempty"`
	Price               Amount      `json:"price,omitempty" yaml:"price,omitempty"`
	Currency            string      `json:"currency,omitempty" yaml:"currency,omitempty"`
	SuitableFor         []string    `json:"suitableFor,omitempty" yaml:"suitableFor,omitempty"`
	DescriptionHeading  string      `json:"descriptionHeading,omitempty" yaml:"descriptionHeading,omitempty"`
	Description         []string    `json:"description,omitempty" yaml:"description,omitempty"`
	FeaturesHeading     string      `json:"featuresHeading,omitempty" yaml:"featuresHeading,omitempty"`
	Features            []Feature   `json:"features,omitempty" yaml:"features,omitempty"`
	BulletsHeading      string      `json:"bulletsHeading,omitempty" yaml:"bulletsHeading,omitempty"`
	Bullets             []string    `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	ContributorsHeading string      `json:"contributorsHeading,omitempty" yaml:"contributorsHeading,omitempty"`
	Contributors        []string    `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	BuyOptions          []BuyOption `json:"buyOptions,omitempty" yaml:"buyOptions,omitempty"`
}

// Meta is the "edition • class" line shown on cards, the hero and the modal.
func (b Book) Meta() string {
	return b.Edition + " • " + b.Class
}

// Amount is a price that may be written as a number or a string.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

func (a *Amount) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	if v == nil {
		*a = ""
		return nil
	}
	*a = Amount(strings.TrimSpace(fmt.Sprint(v)))
	return nil
}

// Feature is one entry of a book's feature list: plain text, or a labelled
// "title: text" pair.
type Feature struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Text  string `json:"text" yaml:"text"`
}

// Labelled reports whether the feature carries a title.
func (f Feature) Labelled() bool {
	return f.Title != ""
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = Feature{Text: s}
		return nil
	}
	type plain Feature
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("feature: %w", err)
	}
	*f = Feature(p)
	return nil
}

func (f *Feature) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		*f = Feature{Text: s}
		return nil
	}
	type plain Feature
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*f = Feature(p)
	return nil
}
