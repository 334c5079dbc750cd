// Package share renders the shareable "days in love" image.
//
// The card is drawn on a gg canvas: a pink gradient, scattered hearts, the
// couple's names, the day count and start date, and an optional circular
// couple photo. It is exported as PNG or lossless WebP:
//
//	img, err := share.Render(result, share.WithPhoto(photo))
//	err = share.Encode(w, img, share.FormatWebP)
package share
