// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/jdvrif/lib/carrier"
	"github.com/bureau-foundation/jdvrif/lib/platform"
	"github.com/bureau-foundation/jdvrif/lib/segment"
	"github.com/bureau-foundation/jdvrif/lib/version"
)

// writeInfo prints the long-form description shown by --info.
func writeInfo(w io.Writer) error {
	var builder strings.Builder

	fmt.Fprintf(&builder, "\n%s\n\n", version.Name)
	builder.WriteString(`jdvrif conceals any file type inside a JPG image, and extracts it again.

Usage:
  jdvrif conceal [-b|-r] <cover_image> <secret_file>
  jdvrif recover <cover_image>
  jdvrif --info

Modes:
  conceal  Compresses, encrypts, and embeds the secret file in the cover
           image. Prints a recovery PIN; keep it safe.
  recover  Decrypts, decompresses, and extracts the secret file. Asks for
           the recovery PIN. Three wrong PINs in a row destroy the data.

Conceal options:
  -b  Bluesky. The image must be posted through the Bluesky API; posting
      it through the web site or app strips the data.
  -r  Reddit. Post with "Create Post", then the "Images & Video" tab.

Images made with -b or -r work only on that platform.

`)

	builder.WriteString("Platform limits for default carriers:\n\n")
	table := tabwriter.NewWriter(&builder, 2, 0, 3, ' ', 0)
	fmt.Fprintf(table, "  Platform\tImage size\tFirst segment\tSegments\n")
	for _, entry := range platform.Table {
		fmt.Fprintf(table, "  %s\t%s\t%s\t%s\n",
			entry.Name,
			formatLimit(entry.MaxImageSize),
			formatLimit(int64(entry.MaxFirstSegment)),
			formatCount(entry.MaxSegments),
		)
	}
	table.Flush()

	fmt.Fprintf(&builder, `
Dedicated modes:
  Bluesky (-b): cover image up to %s, compressed secret file up to about %s.
  Reddit (-r):  cover image plus secret file up to %s.

Compress the secret file yourself (zip, 7z, ...) beforehand if you need
to know its final size. For platforms with small limits, such as
X-Twitter and Tumblr, prefer files that compress well.

To download images from X-Twitter or Reddit intact, open the image in
full view before saving it.
`,
		formatLimit(carrier.MaxBlueskyCoverSize),
		formatLimit(int64(segment.BlueskyCapacity())),
		formatLimit(carrier.MaxRedditCombinedSize),
	)

	_, err := io.WriteString(w, builder.String())
	return err
}

// formatLimit renders a byte limit with binary units. Zero means no
// limit.
func formatLimit(size int64) string {
	if size <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(size))
}

func formatCount(count int) string {
	if count <= 0 {
		return "-"
	}
	return fmt.Sprint(count)
}
