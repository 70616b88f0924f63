// Package puzzle extracts puzzle image URLs from Apache access logs.
//
// A puzzle URL is built from the host encoded in the log file name (the text
// after the first underscore, e.g. "animal_code.google.com") and a request
// path containing "/puzzle/". URLs are deduplicated and ordered so that the
// images, shown in sequence, assemble the picture.
package puzzle
