// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tripdata holds the embedded static trip dataset.

The dataset (data.json, embedded at build time) supplies trip metadata,
flights, hotels, the 6-day schedule with geographic points, the default
packing checklist and credential image references.

	td, err := tripdata.Load()

Load validates the dataset once: exactly 6 days numbered 1..6, a parseable
trip start date, and unique checklist ids. After Load the data is read-only;
handlers share a single *TripData for the life of the process.
*/
package tripdata
