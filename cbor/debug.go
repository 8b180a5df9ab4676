// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"bytes"
	"fmt"
	"time"
)

// DumpValue generates an indented string representing a decoded value tree for debugging purposes
func DumpValue(v Value, prefix string) string {
	var ret bytes.Buffer
	childPrefix := prefix + "  "
	switch v := v.(type) {
	case Int:
		return fmt.Sprintf("%s0x%x (%d),\n", prefix, uint64(v), int64(v))
	case BigInt:
		return fmt.Sprintf("%s%s (bignum),\n", prefix, v.Int.String())
	case ByteString:
		return fmt.Sprintf("%s<bytes> (length %d),\n", prefix, len(v.Bytes()))
	case IndefByteString:
		ret.WriteString(prefix + "<bytes, indefinite> (\n")
		for _, chunk := range v.Chunks {
			ret.WriteString(DumpValue(chunk, childPrefix))
		}
		ret.WriteString(prefix + "),\n")
	case String:
		return fmt.Sprintf("%s%q,\n", prefix, string(v))
	case IndefString:
		ret.WriteString(prefix + "<text, indefinite> (\n")
		for _, chunk := range v.Chunks {
			ret.WriteString(fmt.Sprintf("%s%q,\n", childPrefix, chunk))
		}
		ret.WriteString(prefix + "),\n")
	case Array:
		ret.WriteString(prefix + "[\n")
		for _, item := range v.Items {
			ret.WriteString(DumpValue(item, childPrefix))
		}
		ret.WriteString(prefix + "],\n")
	case Map:
		ret.WriteString(prefix + "{\n")
		for _, pair := range v.Pairs {
			ret.WriteString(DumpValue(pair.Key, childPrefix))
			ret.WriteString(childPrefix + "=>\n")
			ret.WriteString(DumpValue(pair.Value, childPrefix))
		}
		ret.WriteString(prefix + "}\n")
	case Set:
		ret.WriteString(prefix + "set(\n")
		for _, item := range v.Items {
			ret.WriteString(DumpValue(item, childPrefix))
		}
		ret.WriteString(prefix + "),\n")
	case Bool:
		return fmt.Sprintf("%s%v,\n", prefix, bool(v))
	case Null:
		return prefix + "null,\n"
	case Undefined:
		return prefix + "undefined,\n"
	case Float:
		return fmt.Sprintf("%s%v,\n", prefix, v.Value)
	case DecimalFraction:
		ret.WriteString(prefix + "decimal(\n")
		ret.WriteString(DumpValue(v.Mantissa, childPrefix))
		ret.WriteString(DumpValue(v.Exponent, childPrefix))
		ret.WriteString(prefix + "),\n")
	case BigFloat:
		ret.WriteString(prefix + "bigfloat(\n")
		ret.WriteString(DumpValue(v.Mantissa, childPrefix))
		ret.WriteString(DumpValue(v.Exponent, childPrefix))
		ret.WriteString(prefix + "),\n")
	case DateString:
		return fmt.Sprintf("%s%s,\n", prefix, v.Time.Format(time.RFC3339Nano))
	case EpochDate:
		return fmt.Sprintf("%s%s (epoch),\n", prefix, v.Time.Format(time.RFC3339Nano))
	case URI:
		return fmt.Sprintf("%suri(%q),\n", prefix, string(v))
	case MIME:
		return fmt.Sprintf("%smime(%q),\n", prefix, string(v))
	case Regexp:
		return fmt.Sprintf("%sregexp(%q),\n", prefix, string(v))
	case BaseEncoded:
		ret.WriteString(fmt.Sprintf("%sbase-encoded(%d,\n", prefix, v.Encoding))
		ret.WriteString(DumpValue(v.Inner, childPrefix))
		ret.WriteString(prefix + "),\n")
	case Tagged:
		ret.WriteString(fmt.Sprintf("%stag%v(\n", prefix, v.Tags))
		ret.WriteString(DumpValue(v.Inner, childPrefix))
		ret.WriteString(prefix + "),\n")
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}
