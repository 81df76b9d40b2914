package main

// source is a read-only view of a whole input file. data is shared by all
// workers and must not be written.
type source struct {
	data   []byte
	mapped bool
	unmap  func() error
}

func (s *source) Close() error {
	if s.unmap == nil {
		return nil
	}
	err := s.unmap()
	s.unmap = nil
	s.data = nil
	return err
}
