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

package roimeta

import (
	"github.com/omero-tools/roibridge/core/roiModel"
)

// AnnotationMetadata - read-only, schema-shaped view over a list of
// annotations, same bounds contract as ROIMetadata. Each kind is exposed as
// its own indexed sub-list the way the schema shapes its annotation pool.
type AnnotationMetadata struct {
	lsids    LSIDFunc
	comments []*roiModel.Annotation
	tags     []*roiModel.Annotation
}

func NewAnnotationMetadata(lsids LSIDFunc, annotations []*roiModel.Annotation) *AnnotationMetadata {
	m := &AnnotationMetadata{lsids: lsids}
	for _, annotation := range annotations {
		switch annotation.Kind {
		case roiModel.AnnotationComment:
			m.comments = append(m.comments, annotation)
		case roiModel.AnnotationTag:
			m.tags = append(m.tags, annotation)
		}
		// Unmodelled kinds are left out of the view
	}
	return m
}

func (m *AnnotationMetadata) lsidOf(object roiModel.Object) *string {
	lsid, err := m.lsids(object)
	if err != nil {
		return nil
	}
	return &lsid
}

func at(list []*roiModel.Annotation, index int) *roiModel.Annotation {
	if index < 0 || index >= len(list) {
		return nil
	}
	return list[index]
}

func (m *AnnotationMetadata) CommentAnnotationCount() int {
	return len(m.comments)
}

func (m *AnnotationMetadata) CommentAnnotationID(index int) *string {
	annotation := at(m.comments, index)
	if annotation == nil {
		return nil
	}
	return m.lsidOf(annotation)
}

func (m *AnnotationMetadata) CommentAnnotationNamespace(index int) *string {
	annotation := at(m.comments, index)
	if annotation == nil {
		return nil
	}
	return copyStr(annotation.Namespace)
}

func (m *AnnotationMetadata) CommentAnnotationDescription(index int) *string {
	annotation := at(m.comments, index)
	if annotation == nil {
		return nil
	}
	return copyStr(annotation.Description)
}

func (m *AnnotationMetadata) CommentAnnotationValue(index int) *string {
	annotation := at(m.comments, index)
	if annotation == nil {
		return nil
	}
	return copyStr(annotation.TextValue)
}

func (m *AnnotationMetadata) TagAnnotationCount() int {
	return len(m.tags)
}

func (m *AnnotationMetadata) TagAnnotationID(index int) *string {
	annotation := at(m.tags, index)
	if annotation == nil {
		return nil
	}
	return m.lsidOf(annotation)
}

func (m *AnnotationMetadata) TagAnnotationNamespace(index int) *string {
	annotation := at(m.tags, index)
	if annotation == nil {
		return nil
	}
	return copyStr(annotation.Namespace)
}

func (m *AnnotationMetadata) TagAnnotationDescription(index int) *string {
	annotation := at(m.tags, index)
	if annotation == nil {
		return nil
	}
	return copyStr(annotation.Description)
}

func (m *AnnotationMetadata) TagAnnotationValue(index int) *string {
	annotation := at(m.tags, index)
	if annotation == nil {
		return nil
	}
	return copyStr(annotation.TextValue)
}
