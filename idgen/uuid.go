/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package idgen generates the identifiers attached to fold runs.
package idgen

import (
	"github.com/gofrs/uuid/v5"

	"github.com/ARM-software/golang-folds/commonerrors"
)

// GenerateRunID generates a random (version 4) UUID identifying a run.
func GenerateRunID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", commonerrors.WrapError(commonerrors.ErrUnexpected, err, "failed generating run identifier")
	}
	return id.String(), nil
}

// IsValidRunID checks whether a string is a run identifier.
func IsValidRunID(id string) bool {
	_, err := uuid.FromString(id)
	return err == nil
}
