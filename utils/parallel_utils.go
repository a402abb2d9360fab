package utils

import "sort"

// PartitionMap splits the index range [0, MaxIndex) into ParallelDegree contiguous buckets
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

// NewPartitionMap splits evenly, bucket sizes differ by at most one
func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

/*
NewWeightedPartitionMap splits the rows of a CSR matrix so that the buckets hold about the same
number of nonzeros. offsets are the CSR row offsets, one more than there are rows. A single row
is never split, so a dense row can leave neighboring buckets empty.
*/
func NewWeightedPartitionMap(ParallelDegree int, offsets []int) (pm *PartitionMap) {
	var (
		rows  = len(offsets) - 1
		nnz   = offsets[rows]
		begin int
	)
	pm = &PartitionMap{
		MaxIndex:       rows,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		end := rows
		if n < ParallelDegree-1 {
			// first row starting at or past this bucket's share of the nonzeros
			end = sort.SearchInts(offsets, (n+1)*nnz/ParallelDegree)
			end = max(min(end, rows), begin)
		}
		pm.Partitions[n] = [2]int{begin, end}
		begin = end
	}
	return
}

// GetBucket finds the bucket holding index k by bisection, bucketNum is -1 for k out of range
func (pm *PartitionMap) GetBucket(k int) (bucketNum, min, max int) {
	if k < 0 || k >= pm.MaxIndex {
		return -1, 0, 0
	}
	bucketNum = sort.Search(pm.ParallelDegree, func(n int) bool {
		return pm.Partitions[n][1] > k
	})
	min, max = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	if bn == -1 {
		kMax = pm.MaxIndex
		return
	}
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

// Split1D is the index range [lo, hi) of bucket b when MaxIndex is cut into ParallelDegree even
// buckets. The first MaxIndex % ParallelDegree buckets take one extra index.
func (pm *PartitionMap) Split1D(b int) (bucket [2]int) {
	var (
		size  = pm.MaxIndex / pm.ParallelDegree
		extra = pm.MaxIndex % pm.ParallelDegree
	)
	bucket[0] = b*size + min(b, extra)
	bucket[1] = bucket[0] + size
	if b < extra {
		bucket[1]++
	}
	return
}
