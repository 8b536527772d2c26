/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package control

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jkmartindale/ccd2iso/pkg/clonecd"
)

/*
	convert streams the request body through the sector demultiplexer and
	writes the resulting ISO stream into the response. The response is
	chunked, so a failure after the first payload was emitted can only be
	signaled by closing the connection early; failures before any output map
	to a regular error status.
*/
func (a *api) convert(w http.ResponseWriter, req *http.Request) {

	opts := clonecd.Options{Strict: isFlagSet(req, "strict")}

	w.Header().Set("Content-Type", "application/octet-stream")

	stats, err := clonecd.Convert(req.Body, w, opts)

	if err != nil {
		if stats.BytesWritten == 0 {
			handleError(err, http.StatusUnprocessableEntity, w)
		} else {
			log.Errorf("conversion aborted after %d sectors: %v",
				stats.Sectors, err)
			panic(http.ErrAbortHandler)
		}
		return
	}

	if stats.SyncMismatches > 0 {
		log.Warnf("%d of %d sectors had an invalid sync pattern",
			stats.SyncMismatches, stats.Sectors)
	}

	log.Debugf("%d sectors converted, %d bytes written",
		stats.Sectors, stats.BytesWritten)
}
