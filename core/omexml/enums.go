// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package omexml

import "fmt"

// The schema's closed enumerations. FromString parsers return an error for
// anything outside the enumeration; callers that favour lossy conversion
// over failure (the read adapters) turn that into an absent value.

// FillRule - how self-intersecting shape outlines are filled.
type FillRule string

const (
	FillRuleEvenOdd FillRule = "EvenOdd"
	FillRuleNonZero FillRule = "NonZero"
)

func FillRuleFromString(value string) (FillRule, error) {
	switch FillRule(value) {
	case FillRuleEvenOdd, FillRuleNonZero:
		return FillRule(value), nil
	}
	return "", fmt.Errorf("\"%v\" is not a valid FillRule", value)
}

// FontFamily - generic font families the schema recognises.
type FontFamily string

const (
	FontFamilySerif     FontFamily = "serif"
	FontFamilySansSerif FontFamily = "sans-serif"
	FontFamilyCursive   FontFamily = "cursive"
	FontFamilyFantasy   FontFamily = "fantasy"
	FontFamilyMonospace FontFamily = "monospace"
)

func FontFamilyFromString(value string) (FontFamily, error) {
	switch FontFamily(value) {
	case FontFamilySerif, FontFamilySansSerif, FontFamilyCursive, FontFamilyFantasy, FontFamilyMonospace:
		return FontFamily(value), nil
	}
	return "", fmt.Errorf("\"%v\" is not a valid FontFamily", value)
}

// FontStyle - text styling.
type FontStyle string

const (
	FontStyleBold       FontStyle = "Bold"
	FontStyleBoldItalic FontStyle = "BoldItalic"
	FontStyleItalic     FontStyle = "Italic"
	FontStyleNormal     FontStyle = "Normal"
)

func FontStyleFromString(value string) (FontStyle, error) {
	switch FontStyle(value) {
	case FontStyleBold, FontStyleBoldItalic, FontStyleItalic, FontStyleNormal:
		return FontStyle(value), nil
	}
	return "", fmt.Errorf("\"%v\" is not a valid FontStyle", value)
}

// Marker - line/polyline end decorations.
type Marker string

const (
	MarkerArrow Marker = "Arrow"
)

func MarkerFromString(value string) (Marker, error) {
	if Marker(value) == MarkerArrow {
		return MarkerArrow, nil
	}
	return "", fmt.Errorf("\"%v\" is not a valid Marker", value)
}
