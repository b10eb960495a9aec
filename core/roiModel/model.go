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

// Server-side object model for ROIs, shapes and annotations. These are the
// objects the remote store persists and queries; the OME-XML schema side of
// the bridge lives in core/omexml.
package roiModel

// Details - server-assigned lineage, set once an object has been persisted.
type Details struct {
	UpdateEventID int64 `bson:"updateEventId,omitempty" json:"updateEventId,omitempty"`
	GroupID       int64 `bson:"groupId,omitempty" json:"groupId,omitempty"`
}

// Object - anything with a server identity. LSIDKind returns the kind tag
// directly below the universal object root ("Roi", "Shape", "Annotation")
// plus whether the object is of a specific leaf kind. An object without a
// specific kind tag (eg a Shape with no Type) cannot be given an LSID.
type Object interface {
	LSIDKind() (string, bool)
	ObjectID() int64
	UpdateEventID() int64
}

// Roi - a named container of shapes attached to an image, with annotations
// linked to it. Shapes is ordered; Annotations is not.
type Roi struct {
	ID          int64   `bson:"_id,omitempty" json:"id"`
	Name        *string `bson:"name,omitempty" json:"name,omitempty"`
	Description *string `bson:"description,omitempty" json:"description,omitempty"`
	ImageID     int64   `bson:"imageId,omitempty" json:"imageId,omitempty"`

	Shapes []*Shape `bson:"shapes" json:"shapes"`

	// AnnotationIDs is what gets persisted, Annotations is the hydrated
	// in-memory link list used during import assembly and export reads.
	AnnotationIDs []int64       `bson:"annotationIds,omitempty" json:"annotationIds,omitempty"`
	Annotations   []*Annotation `bson:"-" json:"-"`

	Details Details `bson:"details,omitempty" json:"details,omitempty"`
}

func (r *Roi) LSIDKind() (string, bool) {
	return "Roi", true
}
func (r *Roi) ObjectID() int64 {
	return r.ID
}
func (r *Roi) UpdateEventID() int64 {
	return r.Details.UpdateEventID
}

// AddShape - appends to the ordered shape list.
func (r *Roi) AddShape(s *Shape) {
	r.Shapes = append(r.Shapes, s)
}

// LinkAnnotation - links an annotation to this ROI. Duplicate links are NOT
// deduplicated here, the remote store's own semantics apply.
func (r *Roi) LinkAnnotation(a *Annotation) {
	r.Annotations = append(r.Annotations, a)
}

// Image - reference stub. ROIs point at images by id and the bridge never
// loads image data; the type exists so image references can carry an LSID.
type Image struct {
	ID      int64   `bson:"_id,omitempty" json:"id"`
	Details Details `bson:"details,omitempty" json:"details,omitempty"`
}

func (i *Image) LSIDKind() (string, bool) {
	return "Image", true
}
func (i *Image) ObjectID() int64 {
	return i.ID
}
func (i *Image) UpdateEventID() int64 {
	return i.Details.UpdateEventID
}

// AnnotationKind - closed set of modelled annotation kinds.
type AnnotationKind string

const (
	AnnotationComment AnnotationKind = "CommentAnnotation"
	AnnotationTag     AnnotationKind = "TagAnnotation"
)

// Annotation - a text-valued annotation linkable to ROIs.
type Annotation struct {
	ID          int64          `bson:"_id,omitempty" json:"id"`
	Kind        AnnotationKind `bson:"kind" json:"kind"`
	Namespace   *string        `bson:"namespace,omitempty" json:"namespace,omitempty"`
	Description *string        `bson:"description,omitempty" json:"description,omitempty"`
	TextValue   *string        `bson:"textValue,omitempty" json:"textValue,omitempty"`

	Details Details `bson:"details,omitempty" json:"details,omitempty"`
}

func (a *Annotation) LSIDKind() (string, bool) {
	return "Annotation", a.Kind != ""
}
func (a *Annotation) ObjectID() int64 {
	return a.ID
}
func (a *Annotation) UpdateEventID() int64 {
	return a.Details.UpdateEventID
}
