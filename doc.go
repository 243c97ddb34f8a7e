/*
Package qfxconvert converts OFX/QFX statement files to CSV or JSON.

qfxconvert attempts to parse OFX data files which deviate from the OFX spec
by omitting starting or ending tags. Parsed statements are flattened into
uniform records, one per transaction and one per investment position, which
serialize to tabular CSV or a structured JSON document.

Currency amounts are carried as arbitrary-precision decimals until
normalization, where they are converted to float64. CSV and JSON have no
fixed-point number type, so this conversion is lossy by design.
*/
package qfxconvert
