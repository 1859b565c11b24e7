package emit

import (
	"os"
	"path/filepath"
)

// dataLicense covers the generated table data, which is derived from the
// public-domain WHATWG index files.
const dataLicense = `The table data in this directory is derived from the WHATWG Encoding
Standard (https://encoding.spec.whatwg.org/).

To the extent possible under law, the person who associated CC0 with this
data has waived all copyright and related or neighboring rights to it.

You should have received a copy of the CC0 legalcode along with this work.
If not, see <http://creativecommons.org/publicdomain/zero/1.0/>.
`

// WriteLicenseFile drops the data license next to the generated tables.
func WriteLicenseFile(dir string) error {
	return os.WriteFile(filepath.Join(dir, "LICENSE.txt"), []byte(dataLicense), 0644)
}
