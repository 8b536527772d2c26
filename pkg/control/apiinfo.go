/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package control

import (
	"encoding/json"
	"net/http"

	"github.com/jkmartindale/ccd2iso/pkg/clonecd"
)

//
func (a *api) info(w http.ResponseWriter, req *http.Request) {

	w.Header().Set("Content-Type", "application/json")

	handleError(json.NewEncoder(w).Encode(&Info{
		Version:    a.version,
		SectorSize: clonecd.SectorSize,
		Modes:      []int{clonecd.Mode0, clonecd.Mode1, clonecd.Mode2},
		PayloadSize: map[string]int{
			"mode0": clonecd.DataSize,
			"mode1": clonecd.DataSize,
			"mode2": clonecd.DataSizeXA,
		},
	}), http.StatusInternalServerError, w)
}
