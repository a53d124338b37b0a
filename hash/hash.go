package hash

// Size of the blake3 digest.
const Size = 32

// Sum computes blake3 digest of the chunks.
func Sum(chunks ...[]byte) (rst [Size]byte) {
	hasher := GetHasher()
	defer PutHasher(hasher)
	for _, chunk := range chunks {
		hasher.Write(chunk)
	}
	hasher.Sum(rst[:0])
	return rst
}
